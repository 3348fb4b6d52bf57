package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"scholarportal/internal/domain"
)

// maxJSONBody limits JSON request bodies. Uploads use multipart and their own limit.
const maxJSONBody = 1 << 20

// ParseJSON decodes JSON from the request body into the given destination.
// Malformed input is reported as a *domain.ValidationError on "body" so the
// client gets a 400 like any other invalid payload.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", fmt.Sprintf("must be at most %d bytes", maxErr.Limit))
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return domain.NewValidationError(typeErr.Field, fmt.Sprintf("must be a %s", typeErr.Type.Kind()))
		default:
			return domain.NewValidationError("body", "invalid JSON: "+err.Error())
		}
	}

	return nil
}

// QueryInt reads a positive integer query parameter, returning def when absent or malformed.
func QueryInt(r *http.Request, name string, def int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// QueryString returns the trimmed query parameter.
func QueryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
