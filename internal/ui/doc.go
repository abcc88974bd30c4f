// Package ui provides a thread-affinity executor for work that must run
// on the designated UI goroutine.
//
// Some host objects may only be constructed or mutated on one goroutine.
// The Executor marshals such work from any goroutine onto the single
// goroutine running its loop, blocking the caller until the work completes.
// Calls made from the UI goroutine itself run inline, so marshalled work
// may safely invoke the executor again without deadlocking.
//
// # Usage
//
//	exec := ui.NewExecutor()
//	go exec.Run(ctx) // the goroutine calling Run becomes the UI goroutine
//	defer exec.Close()
//
//	// From any goroutine:
//	err := exec.InvokeAndWait(ctx, func() error {
//	    // runs on the UI goroutine
//	    return nil
//	})
//
// Panics in marshalled work are recovered, reported through a configurable
// panic handler, and surfaced to the caller as errors; a panicking task
// never kills the UI goroutine.
package ui
