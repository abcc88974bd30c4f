package script

import "errors"

// Script validator errors.
var (
	// ErrValidatorClosed is returned when using a closed validator.
	ErrValidatorClosed = errors.New("script: validator is closed")

	// ErrMissingFunction indicates the script does not declare a
	// required global function.
	ErrMissingFunction = errors.New("script: missing required function")
)
