package models

import (
	"fmt"
	"strings"
)

// FieldError is a validation failure attributed to a single entity attribute.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects per-field validation failures. It implements error so
// services can return it directly and handlers can map it to a 400 response.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "invalid data: " + strings.Join(parts, ", ")
}

// Add appends a failure for the given field.
func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// OrNil returns the collected errors, or nil if none were recorded.
// Returning a typed nil slice as error would always be non-nil, hence this helper.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
