package ui

import "errors"

// Executor errors.
var (
	// ErrExecutorClosed is returned when invoking on a closed executor.
	ErrExecutorClosed = errors.New("ui: executor is closed")

	// ErrQueueFull is returned when the invoke queue cannot accept more work.
	ErrQueueFull = errors.New("ui: invoke queue is full")

	// ErrPanic wraps a panic recovered from marshalled work.
	ErrPanic = errors.New("ui: panic in invoked function")
)
