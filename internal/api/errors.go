package api

import (
	"fmt"
	"net/http"

	"jobdesk/internal/common"
)

// APIError is a non-2xx response from the job-board API. Message carries the
// server's {"message": ...} payload when present, so views can surface it to
// the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s", http.StatusText(e.Status))
}

// Is maps HTTP status codes onto the shared sentinel errors, so callers can
// match with errors.Is without inspecting status codes themselves.
func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case common.ErrForbidden:
		return e.Status == http.StatusForbidden
	case common.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
