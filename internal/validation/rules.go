package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"scholarportal/internal/domain/models"
)

var latinLetters = regexp.MustCompile(`[a-zA-Z]`)

// oneOf builds an In rule over a typed enum list.
func oneOf[T ~string](values []T) ozzo.InRule {
	elements := make([]interface{}, len(values))
	for i, v := range values {
		elements[i] = v
	}
	return ozzo.In(elements...).Error("must be one of the allowed values")
}

// stringOf unwraps a string-kinded value; ok is false for nil or non-strings.
func stringOf(value interface{}) (string, bool) {
	value, isNil := ozzo.Indirect(value)
	if isNil || value == nil {
		return "", false
	}
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.String {
		return "", false
	}
	return v.String(), true
}

// httpURL accepts blank values and absolute http(s) URLs.
var httpURL = ozzo.By(func(value interface{}) error {
	s, ok := stringOf(value)
	if !ok {
		return nil
	}
	if !IsValidHTTPURL(s) {
		return errors.New("must be a valid http or https URL")
	}
	return nil
})

// uuidOrBlank accepts blank values and canonical UUIDs.
var uuidOrBlank = ozzo.By(func(value interface{}) error {
	s, ok := stringOf(value)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid UUID")
	}
	return nil
})

// noLatinLetters rejects text containing any ASCII letter.
var noLatinLetters = ozzo.By(func(value interface{}) error {
	s, ok := stringOf(value)
	if !ok {
		return nil
	}
	if latinLetters.MatchString(s) {
		return errors.New("must not contain Latin letters")
	}
	return nil
})

// notBlank rejects whitespace-only strings, which Required lets through.
var notBlank = ozzo.By(func(value interface{}) error {
	s, ok := stringOf(value)
	if ok && strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})

// bilingualRequired demands at least one language of a BilingualText.
var bilingualRequired = ozzo.By(func(value interface{}) error {
	value, isNil := ozzo.Indirect(value)
	if isNil {
		return nil
	}
	text, ok := value.(models.BilingualText)
	if !ok {
		return nil
	}
	if strings.TrimSpace(text.En) == "" && strings.TrimSpace(text.Ar) == "" {
		return errors.New("at least one language is required")
	}
	return nil
})

// optionalValue returns what a tri-state field asks to store, or nil.
func optionalValue(o models.OptionalString) interface{} {
	if !o.Present || o.Value == nil {
		return nil
	}
	return *o.Value
}

// optionalEnum is optionalValue converted to the enum type so In rules compare
// like with like.
func optionalEnum[T ~string](o models.OptionalString) interface{} {
	if !o.Present || o.Value == nil {
		return nil
	}
	return T(*o.Value)
}
