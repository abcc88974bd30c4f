package editor

import "errors"

// Editor registry errors.
var (
	// ErrNoProvider indicates no registered provider accepts the file.
	ErrNoProvider = errors.New("editor: no provider accepts file")

	// ErrDuplicateProvider indicates a provider type ID is already registered.
	ErrDuplicateProvider = errors.New("editor: provider type already registered")

	// ErrUnknownProvider indicates the requested provider type is not registered.
	ErrUnknownProvider = errors.New("editor: unknown provider type")

	// ErrForeignState indicates a state of a different editor kind was applied.
	ErrForeignState = errors.New("editor: state belongs to a different editor kind")
)
