package models

import "time"

// Application status values as reported by the API.
const (
	StatusPending     = "pending"
	StatusReviewing   = "reviewing"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusAccepted    = "accepted"
)

// ApplicationStatuses lists the statuses an employer may set.
var ApplicationStatuses = []string{
	StatusPending,
	StatusReviewing,
	StatusShortlisted,
	StatusRejected,
	StatusAccepted,
}

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Application ties an applicant to a job with a cover letter and a status
// driven through the employer's review flow.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	Job         *Job      `json:"job,omitempty"`
	Applicant   *User     `json:"applicant,omitempty"`
	CoverLetter string    `json:"coverLetter"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"appliedAt"`
}

// ApplicationRequest is the payload for POST /applications.
type ApplicationRequest struct {
	JobID       string `json:"jobId"`
	CoverLetter string `json:"coverLetter"`
}

// StatusUpdateRequest is the payload for PUT /applications/:id/status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
