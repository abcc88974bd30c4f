package config

import "errors"

// Configuration errors.
var (
	// ErrInvalidLayout indicates an unknown split layout name.
	ErrInvalidLayout = errors.New("config: invalid split layout")

	// ErrInvalidRatio indicates a split ratio outside (0, 1).
	ErrInvalidRatio = errors.New("config: split ratio must be between 0 and 1")

	// ErrInvalidDebounce indicates a non-positive preview debounce.
	ErrInvalidDebounce = errors.New("config: preview debounce must be positive")

	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrWatcherClosed indicates an operation on a closed watcher.
	ErrWatcherClosed = errors.New("config: watcher is closed")
)
