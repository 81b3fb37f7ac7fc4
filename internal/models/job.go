package models

import "time"

// Job type and experience level values accepted by the API.
var (
	JobTypes         = []string{"Full-time", "Part-time", "Contract", "Internship", "Remote"}
	ExperienceLevels = []string{"Entry", "Mid", "Senior", "Executive"}
)

// Job is a single listing as returned by the API.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	JobType         string    `json:"jobType"`
	ExperienceLevel string    `json:"experienceLevel"`
	Salary          string    `json:"salary,omitempty"`
	Requirements    []string  `json:"requirements,omitempty"`
	PostedBy        string    `json:"postedBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// JobInput is the payload for creating or updating a listing.
type JobInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	JobType         string   `json:"jobType"`
	ExperienceLevel string   `json:"experienceLevel"`
	Salary          string   `json:"salary,omitempty"`
	Requirements    []string `json:"requirements,omitempty"`
}

// JobFilter holds the query parameters of GET /jobs. Zero values are omitted
// from the query string.
type JobFilter struct {
	Search          string
	Location        string
	JobType         string
	ExperienceLevel string
	Page            int
	Limit           int
}

// JobPage is the paginated envelope of GET /jobs.
type JobPage struct {
	Jobs        []Job `json:"jobs"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int   `json:"total"`
}
