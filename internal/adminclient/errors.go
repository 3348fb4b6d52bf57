package adminclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"scholarportal/internal/domain"
)

// APIError is a decoded RFC 7807 problem response.
type APIError struct {
	Status       int               `json:"status"`
	Title        string            `json:"title"`
	Detail       string            `json:"detail"`
	Issues       map[string]string `json:"issues,omitempty"`
	Field        string            `json:"field,omitempty"`
	ResourceType string            `json:"resource_type,omitempty"`
	ExistingID   string            `json:"existing_id,omitempty"`
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Title
	}
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, msg)
}

// FieldErrors returns the per-field messages of a 400, or the colliding
// field of a 409.
func (e *APIError) FieldErrors() map[string]string {
	if len(e.Issues) > 0 {
		return e.Issues
	}
	if e.Status == http.StatusConflict && e.Field != "" {
		return map[string]string{e.Field: e.Detail}
	}
	return nil
}

// Is lets callers match against the domain sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrValidation:
		return e.Status == http.StatusBadRequest
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrConflict:
		return e.Status == http.StatusConflict
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.Status == http.StatusForbidden
	}
	return false
}

func decodeProblem(status int, body []byte) error {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Status == 0 {
		apiErr = &APIError{Status: status, Detail: strings.TrimSpace(string(body))}
	}
	apiErr.Status = status
	return apiErr
}
