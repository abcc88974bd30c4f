package script

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/markview/internal/psi"
)

// Default limits for script execution.
const (
	defaultCallTimeout   = 50 * time.Millisecond
	defaultCallStackSize = 64
	defaultRegistrySize  = 1024
)

// Validator is a rename input validator backed by a Lua script.
//
// It implements rename.InputValidator. Script failures (errors, timeouts)
// reject the input rather than surfacing an error, mirroring the
// reject-by-returning-false contract of the rename flow.
type Validator struct {
	mu     sync.Mutex
	L      *lua.LState
	closed bool

	callTimeout time.Duration
}

// Option configures a Validator.
type Option func(*Validator)

// WithCallTimeout bounds each script call.
func WithCallTimeout(d time.Duration) Option {
	return func(v *Validator) {
		if d > 0 {
			v.callTimeout = d
		}
	}
}

// New compiles a validator script. The script must declare global
// functions matches(kind) and is_valid(name).
func New(source string, opts ...Option) (*Validator, error) {
	L := lua.NewState(lua.Options{
		CallStackSize: defaultCallStackSize,
		RegistrySize:  defaultRegistrySize,
	})
	sandbox(L)

	v := &Validator{
		L:           L,
		callTimeout: defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: load validator: %w", err)
	}

	for _, name := range []string{"matches", "is_valid"} {
		if _, ok := L.GetGlobal(name).(*lua.LFunction); !ok {
			L.Close()
			return nil, fmt.Errorf("%w: %s", ErrMissingFunction, name)
		}
	}

	return v, nil
}

// Pattern returns a structural pattern that defers to the script's
// matches(kind) function.
func (v *Validator) Pattern() psi.Pattern {
	return psi.PatternFunc(func(el psi.Element) bool {
		if el == nil {
			return false
		}
		result, err := v.callBool("matches", string(el.Kind()))
		if err != nil {
			return false
		}
		return result
	})
}

// IsInputValid reports whether the script accepts newName.
func (v *Validator) IsInputValid(newName string, _ psi.Element) bool {
	result, err := v.callBool("is_valid", newName)
	if err != nil {
		return false
	}
	return result
}

// Close releases the Lua state. The validator rejects everything after.
func (v *Validator) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	v.L.Close()
}

// callBool invokes a script function with one string argument and
// interprets the result as a Lua truth value.
func (v *Validator) callBool(fn, arg string) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return false, ErrValidatorClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), v.callTimeout)
	defer cancel()
	v.L.SetContext(ctx)
	defer v.L.RemoveContext()

	if err := v.L.CallByParam(lua.P{
		Fn:      v.L.GetGlobal(fn),
		NRet:    1,
		Protect: true,
	}, lua.LString(arg)); err != nil {
		return false, fmt.Errorf("script: call %s: %w", fn, err)
	}

	ret := v.L.Get(-1)
	v.L.Pop(1)
	return lua.LVAsBool(ret), nil
}
