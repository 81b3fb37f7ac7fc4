// Package api implements the client side of the job-board REST API.
package api

import (
	"context"
	"io"

	"jobdesk/internal/models"
)

// TokenSource provides the current bearer token at request-dispatch time.
// Returning "" means the request goes out without an Authorization header;
// the server is the authority on rejecting unauthenticated calls.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to the TokenSource interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client is the full surface of the job-board API as consumed by the CLI.
// Register and Login establish identity and are sent without a bearer token;
// every other call carries the current token when one is available.
type Client interface {
	// Auth.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Profile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, patch models.UserPatch) (models.User, error)
	UploadResume(ctx context.Context, filename string, r io.Reader) (string, error)

	// Jobs.
	ListJobs(ctx context.Context, filter models.JobFilter) (models.JobPage, error)
	Job(ctx context.Context, id string) (models.Job, error)
	CreateJob(ctx context.Context, input models.JobInput) (models.Job, error)
	UpdateJob(ctx context.Context, id string, input models.JobInput) (models.Job, error)
	DeleteJob(ctx context.Context, id string) error
	MyJobs(ctx context.Context) ([]models.Job, error)

	// Applications.
	Apply(ctx context.Context, req models.ApplicationRequest) (models.Application, error)
	MyApplications(ctx context.Context) ([]models.Application, error)
	JobApplications(ctx context.Context, jobID string) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status string) (models.Application, error)
	DeleteApplication(ctx context.Context, id string) error
}
