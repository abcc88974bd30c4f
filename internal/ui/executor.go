package ui

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"sync"
	"sync/atomic"
)

// PanicHandler is called when marshalled work panics.
type PanicHandler func(value any, stack []byte)

// call is a unit of work queued for the UI goroutine.
type call struct {
	fn     func() error
	result chan error
}

// Executor serializes work onto a single designated UI goroutine.
//
// The goroutine that calls Run owns all marshalled work. InvokeAndWait
// from any other goroutine enqueues the work and blocks until the UI
// goroutine has executed it.
type Executor struct {
	queue chan *call
	done  chan struct{}

	closed    atomic.Bool
	closeOnce sync.Once

	// Goroutine ID of the Run loop; zero when not running.
	uiGoroutine atomic.Int64

	panicHandler PanicHandler

	// Stats
	invoked   atomic.Uint64
	succeeded atomic.Uint64
	failed    atomic.Uint64
	panicked  atomic.Uint64
}

// Option configures an Executor.
type Option func(*Executor)

// WithQueueSize sets the invoke queue capacity.
func WithQueueSize(n int) Option {
	return func(e *Executor) {
		if n > 0 {
			e.queue = make(chan *call, n)
		}
	}
}

// WithPanicHandler sets the handler called when marshalled work panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// NewExecutor creates a new UI executor.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		queue: make(chan *call, 64),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run processes marshalled work until the context is cancelled or Close is
// called. The calling goroutine becomes the UI goroutine for the lifetime
// of the loop.
func (e *Executor) Run(ctx context.Context) {
	e.uiGoroutine.Store(goroutineID())
	defer e.uiGoroutine.Store(0)

	for {
		select {
		case <-ctx.Done():
			e.drainQueue(ctx.Err())
			return
		case <-e.done:
			e.drainQueue(ErrExecutorClosed)
			return
		case c := <-e.queue:
			err := e.execute(c.fn)
			select {
			case c.result <- err:
			default:
			}
			close(c.result)
		}
	}
}

// InvokeAndWait runs fn on the UI goroutine and blocks until it completes.
// Called from the UI goroutine itself, fn runs inline. The context bounds
// the wait; if it is cancelled while fn is queued, the call returns the
// context error but fn may still run later.
func (e *Executor) InvokeAndWait(ctx context.Context, fn func() error) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}

	if e.OnUIGoroutine() {
		return e.execute(fn)
	}

	c := &call{
		fn:     fn,
		result: make(chan error, 1),
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrExecutorClosed
	case e.queue <- c:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err, ok := <-c.result:
		if !ok {
			return ErrExecutorClosed
		}
		return err
	}
}

// InvokeLater queues fn on the UI goroutine without waiting for completion.
// Returns ErrQueueFull if the queue cannot accept the work.
func (e *Executor) InvokeLater(fn func() error) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}

	c := &call{
		fn:     fn,
		result: make(chan error, 1),
	}

	select {
	case <-e.done:
		return ErrExecutorClosed
	case e.queue <- c:
		// Drain the result to avoid leaking the waiter.
		go func() {
			<-c.result
		}()
		return nil
	default:
		return ErrQueueFull
	}
}

// OnUIGoroutine reports whether the caller is running on the UI goroutine.
func (e *Executor) OnUIGoroutine() bool {
	ui := e.uiGoroutine.Load()
	return ui != 0 && ui == goroutineID()
}

// Close stops the executor and prevents new work. Queued work completes
// with ErrExecutorClosed.
func (e *Executor) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		close(e.done)
	})
}

// IsClosed reports whether the executor has been closed.
func (e *Executor) IsClosed() bool {
	return e.closed.Load()
}

// Stats contains executor counters.
type Stats struct {
	// Invoked is the total number of executed functions.
	Invoked uint64

	// Succeeded is the number of functions that returned nil.
	Succeeded uint64

	// Failed is the number of functions that returned an error.
	Failed uint64

	// Panicked is the number of functions that panicked.
	Panicked uint64
}

// Stats returns a snapshot of the executor counters.
func (e *Executor) Stats() Stats {
	return Stats{
		Invoked:   e.invoked.Load(),
		Succeeded: e.succeeded.Load(),
		Failed:    e.failed.Load(),
		Panicked:  e.panicked.Load(),
	}
}

// execute runs a single function with panic recovery.
func (e *Executor) execute(fn func() error) (err error) {
	e.invoked.Add(1)

	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			e.panicked.Add(1)
			err = fmt.Errorf("%w: %v", ErrPanic, r)

			if e.panicHandler != nil {
				func() {
					defer func() {
						// A panicking panic handler must not take
						// down the UI goroutine either.
						_ = recover()
					}()
					e.panicHandler(r, stack)
				}()
			}
		}
	}()

	err = fn()
	if err != nil {
		e.failed.Add(1)
	} else {
		e.succeeded.Add(1)
	}
	return err
}

// drainQueue completes remaining queued calls with the given error.
func (e *Executor) drainQueue(err error) {
	for {
		select {
		case c := <-e.queue:
			select {
			case c.result <- err:
			default:
			}
			close(c.result)
		default:
			return
		}
	}
}

// goroutineID returns the numeric ID of the calling goroutine.
// The runtime offers no public accessor; the ID is parsed from the
// first line of the stack trace ("goroutine N [running]:").
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
