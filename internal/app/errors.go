package app

import "errors"

// Application errors.
var (
	// ErrQuit signals a clean shutdown request from the event loop.
	ErrQuit = errors.New("app: quit requested")

	// ErrNoFile indicates Run was called without a file to open.
	ErrNoFile = errors.New("app: no file to open")

	// ErrAlreadyRunning indicates a second concurrent Run call.
	ErrAlreadyRunning = errors.New("app: already running")
)
