package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrAlreadyRegistered  = errors.New("email is already registered")
	ErrEmailNotRegistered = errors.New("email not registered")
	ErrInvalidPassword    = errors.New("password is invalid")
	ErrStoreUnavailable   = errors.New("store unavailable")

	// Input validation.
	ErrValidation = errors.New("validation failed")

	// Transport errors.
	ErrTimeout     = errors.New("request timed out")
	ErrUnavailable = errors.New("service unavailable")

	// Session token and admission errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrRateLimited  = errors.New("too many requests")
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when an input is rejected before it reaches
// the store. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Messages returns the per-field messages in "field: message" form.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Field+": "+f.Message)
	}
	return out
}
