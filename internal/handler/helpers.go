package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"scholarportal/internal/domain"
	"scholarportal/internal/httputil"
)

// handleError converts domain errors to RFC 7807 responses. Anything outside
// the taxonomy is logged in full and answered with a generic 500.
func handleError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
		notFoundErr   *domain.NotFoundError
		configErr     *domain.ServerConfigurationError
	)

	switch {
	case errors.As(err, &validationErr):
		httputil.RespondValidation(w, validationErr.Message, validationErr.Fields)
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFoundErr):
		httputil.RespondError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "not found")
	case errors.As(err, &conflictErr):
		httputil.RespondConflict(w, conflictErr.Message, conflictErr.Field, conflictErr.ResourceType, conflictErr.ResourceID)
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, "forbidden")
	case errors.As(err, &configErr):
		slog.Error("server configuration error", "component", configErr.Component)
		httputil.RespondError(w, http.StatusInternalServerError, "the server is not fully configured; please try again later")
	default:
		slog.Error("unhandled error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error; please try again")
	}
}

// pathID returns the {id} path segment
func pathID(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if id == "" {
		return "", domain.NewValidationError("id", "is required")
	}
	return id, nil
}
