// Package common contains shared constants and sentinel errors used across
// jobdesk components.
package common

// TokenStorageKey is the fixed key under which the bearer token is kept in
// client-local persistent storage.
const TokenStorageKey = "token"

// Role values as reported by the job-board API.
const (
	RoleJobSeeker = "jobseeker"
	RoleEmployer  = "employer"
)
