package tutor

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request or configuration failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedTask indicates the request named a task kind outside the
	// four recognized ones. It is an expected outcome, not a fault: the
	// boundary renders it as a plain-text answer.
	ErrUnsupportedTask = errors.New("unsupported task")
)
