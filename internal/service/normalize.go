package service

import (
	"strings"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/validation"
)

// trimmedOrNil trims s and maps blank to nil.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// cleanURLOrNil runs CleanDuplicatedURL and maps blank to nil.
func cleanURLOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := validation.CleanDuplicatedURL(*s)
	if v == "" {
		return nil
	}
	return &v
}

// normalizeTags trims tags and drops empty ones. No tags becomes nil so the
// store keeps NULL rather than an empty array.
func normalizeTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// trimOptional trims the value of a present optional field in place.
func trimOptional(o models.OptionalString) models.OptionalString {
	if o.Present && o.Value != nil {
		v := strings.TrimSpace(*o.Value)
		o.Value = &v
	}
	return o
}

// cleanOptionalURL applies CleanDuplicatedURL to a present optional field.
func cleanOptionalURL(o models.OptionalString) models.OptionalString {
	if o.Present && o.Value != nil {
		v := validation.CleanDuplicatedURL(*o.Value)
		o.Value = &v
	}
	return o
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
