package model

import "errors"

var (
	ErrInvalidDomain      = errors.New("invalid domain")
	ErrInvalidSwitchType  = errors.New("invalid switch type")
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidBrightness  = errors.New("invalid brightness")
	ErrInvalidNodeIDToken = errors.New("invalid node id")
	ErrMissingTarget      = errors.New("missing target")
)

// ValidationError carries the message shown to the operator and the kind it
// belongs to, so callers can use errors.Is against the sentinels above.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func NewValidationError(kind error, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}
