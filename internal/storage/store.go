// Package storage persists the session's bearer token across process
// restarts in a client-local state database. The session store is the single
// writer; no other component writes here directly.
package storage

import "context"

// TokenStore holds at most one bearer token under a fixed key.
// Get returns "" with a nil error when no token is stored.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
