package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrServerConfiguration = errors.New("server configuration error")
)

// ValidationError carries every violated field at once so a form can render
// all of them in one pass.
type ValidationError struct {
	Message string
	Fields  map[string]string // field name -> message
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Message: "invalid request payload",
		Fields:  map[string]string{field: message},
	}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against ErrValidation
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError indicates the target id does not exist or was already removed
type NotFoundError struct {
	ResourceType string
	ID           string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.ResourceType, e.ID)
}

func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// Is allows errors.Is() to match against ErrNotFound
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError represents a uniqueness violation, naming the duplicate attribute
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // collection, resource, question, site_settings
	Field        string // attribute (or attribute set) that collided
	ResourceID   string // ID of the existing/conflicting row, when known
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// ServerConfigurationError reports a collaborator that failed to initialize.
// Component is for logs only and never sent to clients.
type ServerConfigurationError struct {
	Component string
}

func (e *ServerConfigurationError) Error() string {
	return fmt.Sprintf("server configuration error: %s unavailable", e.Component)
}

func (e *ServerConfigurationError) StatusCode() int { return http.StatusInternalServerError }

// Is allows errors.Is() to match against ErrServerConfiguration
func (e *ServerConfigurationError) Is(target error) bool { return target == ErrServerConfiguration }
