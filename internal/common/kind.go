package common

import (
	"context"
	"errors"
)

// Kind is the stable, wire-safe category of an error. Its string value is
// used as the reason code in transport replies.
type Kind string

const (
	KindInternal           Kind = "INTERNAL"
	KindValidation         Kind = "VALIDATION_FAILED"
	KindAlreadyRegistered  Kind = "EMAIL_ALREADY_REGISTERED"
	KindEmailNotRegistered Kind = "EMAIL_NOT_REGISTERED"
	KindInvalidPassword    Kind = "INVALID_PASSWORD"
	KindStoreUnavailable   Kind = "STORE_UNAVAILABLE"
	KindTimeout            Kind = "TIMEOUT"
	KindUnavailable        Kind = "UNAVAILABLE"
	KindInvalidToken       Kind = "INVALID_TOKEN"
	KindRateLimited        Kind = "RATE_LIMITED"
)

var kindErrors = map[Kind]error{
	KindInternal:           ErrorInternal,
	KindValidation:         ErrValidation,
	KindAlreadyRegistered:  ErrAlreadyRegistered,
	KindEmailNotRegistered: ErrEmailNotRegistered,
	KindInvalidPassword:    ErrInvalidPassword,
	KindStoreUnavailable:   ErrStoreUnavailable,
	KindTimeout:            ErrTimeout,
	KindUnavailable:        ErrUnavailable,
	KindInvalidToken:       ErrInvalidToken,
	KindRateLimited:        ErrRateLimited,
}

// KindOf classifies err. Unknown errors are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrAlreadyRegistered):
		return KindAlreadyRegistered
	case errors.Is(err, ErrEmailNotRegistered):
		return KindEmailNotRegistered
	case errors.Is(err, ErrInvalidPassword):
		return KindInvalidPassword
	case errors.Is(err, ErrStoreUnavailable):
		return KindStoreUnavailable
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	case errors.Is(err, ErrInvalidToken):
		return KindInvalidToken
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	}
	return KindInternal
}

// Err returns the sentinel error for k. Unknown kinds map to ErrorInternal.
func (k Kind) Err() error {
	if err, ok := kindErrors[k]; ok {
		return err
	}
	return ErrorInternal
}

// ParseKind converts a reason code back into a Kind. The second value is
// false when the code is not one of the known kinds.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := kindErrors[k]
	return k, ok
}
