package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON marshals data before touching the response so an encoding
// failure still yields a clean 500.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		slog.Error("encode response", "error", err)
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondNoContent writes an empty 204 response
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Problem is the RFC 7807 body every error response carries. Issues is set on
// validation failures (field -> message); Field, ResourceType and ExistingID
// name the colliding row on a 409.
type Problem struct {
	Type         string            `json:"type"`
	Title        string            `json:"title"`
	Status       int               `json:"status"`
	Detail       string            `json:"detail,omitempty"`
	Issues       map[string]string `json:"issues,omitempty"`
	Field        string            `json:"field,omitempty"`
	ResourceType string            `json:"resource_type,omitempty"`
	ExistingID   string            `json:"existing_id,omitempty"`
}

// NewProblem fills the type and title for status.
func NewProblem(status int, detail string) Problem {
	return Problem{
		Type:   problemType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

// RespondError writes a plain problem for status.
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondProblem(w, NewProblem(status, detail))
}

// RespondValidation writes a 400 listing every failed field.
func RespondValidation(w http.ResponseWriter, detail string, issues map[string]string) {
	p := NewProblem(http.StatusBadRequest, detail)
	p.Issues = issues
	RespondProblem(w, p)
}

// RespondConflict writes a 409 naming the duplicate attribute and, when
// known, the row it collided with.
func RespondConflict(w http.ResponseWriter, detail, field, resourceType, existingID string) {
	p := NewProblem(http.StatusConflict, detail)
	p.Field = field
	p.ResourceType = resourceType
	p.ExistingID = existingID
	RespondProblem(w, p)
}

// RespondProblem writes p as application/problem+json.
func RespondProblem(w http.ResponseWriter, p Problem) {
	payload, err := json.Marshal(p)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	w.Write(payload)
}

var problemTypes = map[int]string{
	http.StatusBadRequest:            "https://datatracker.ietf.org/doc/html/rfc9110#section-15.5.1",
	http.StatusUnauthorized:          "https://datatracker.ietf.org/doc/html/rfc9110#section-15.5.2",
	http.StatusForbidden:             "https://datatracker.ietf.org/doc/html/rfc9110#section-15.5.4",
	http.StatusNotFound:              "https://datatracker.ietf.org/doc/html/rfc9110#section-15.5.5",
	http.StatusConflict:              "https://datatracker.ietf.org/doc/html/rfc9110#section-15.5.10",
	http.StatusRequestEntityTooLarge: "https://datatracker.ietf.org/doc/html/rfc9110#section-15.5.14",
	http.StatusInternalServerError:   "https://datatracker.ietf.org/doc/html/rfc9110#section-15.6.1",
}

func problemType(status int) string {
	if t, ok := problemTypes[status]; ok {
		return t
	}
	return "about:blank"
}
