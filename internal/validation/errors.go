package validation

import (
	"errors"
	"fmt"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"scholarportal/internal/domain"
)

// toDomainError converts an ozzo result into a *domain.ValidationError
// carrying every failed field. Internal rule errors are returned as-is.
func toDomainError(err error) error {
	if err == nil {
		return nil
	}
	var internal ozzo.InternalError
	if errors.As(err, &internal) {
		return fmt.Errorf("validation rule failed: %w", internal.InternalError())
	}
	var fieldErrs ozzo.Errors
	if !errors.As(err, &fieldErrs) {
		return &domain.ValidationError{Message: err.Error()}
	}
	out := &domain.ValidationError{
		Message: "invalid request payload",
		Fields:  make(map[string]string, len(fieldErrs)),
	}
	for field, fieldErr := range fieldErrs {
		if fieldErr != nil {
			out.Fields[field] = fieldErr.Error()
		}
	}
	if len(out.Fields) == 0 {
		return nil
	}
	return out
}
