package editor

import (
	"context"
	"path/filepath"

	"github.com/dshills/markview/internal/editor/state"
)

// File identifies a file presented to editor providers.
type File struct {
	// Path is the absolute or workspace-relative path to the file.
	Path string
}

// Name returns the base name of the file.
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// Ext returns the file extension including the leading dot.
func (f File) Ext() string {
	return filepath.Ext(f.Path)
}

// State is a persistable editor state. Providers type-assert the concrete
// state they produced; foreign states are ignored on write.
type State interface {
	// Equals reports whether the state is equivalent to other.
	Equals(other State) bool
}

// Policy controls how an editor is placed relative to the host default.
type Policy int

const (
	// PolicyPlaceAfterDefault places the editor after the default editor.
	PolicyPlaceAfterDefault Policy = iota

	// PolicyDefault lets the host decide placement.
	PolicyDefault

	// PolicyHideDefault replaces the host default editor entirely.
	PolicyHideDefault
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyPlaceAfterDefault:
		return "place-after-default"
	case PolicyDefault:
		return "default"
	case PolicyHideDefault:
		return "hide-default"
	default:
		return "unknown"
	}
}

// Editor is a constructed editor view for a single file.
type Editor interface {
	// TypeID identifies the provider kind that built this editor.
	TypeID() string

	// File returns the file the editor presents.
	File() File

	// State captures the editor's current persistable state.
	State() State

	// SetState applies a previously captured state.
	// States of a foreign type are rejected with an error.
	SetState(st State) error

	// Dispose releases the editor's resources.
	Dispose()
}

// Provider is a factory that opens files in editors of one kind.
type Provider interface {
	// TypeID returns the stable identifier of this provider kind.
	TypeID() string

	// Accept reports whether this provider can open the file.
	Accept(ctx context.Context, file File) bool

	// CreateEditor constructs an editor for the file.
	CreateEditor(ctx context.Context, file File) (Editor, error)

	// ReadState deserializes editor state from the provider's element.
	ReadState(elem *state.Element, file File) (State, error)

	// WriteState serializes editor state into the provider's element.
	WriteState(st State, file File, elem *state.Element) error

	// Policy returns the editor placement policy.
	Policy() Policy
}

// Builder defers editor construction to a later point, typically so the
// final build step can be marshalled onto the UI goroutine.
type Builder interface {
	// Build constructs the editor.
	Build() (Editor, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func() (Editor, error)

// Build constructs the editor by calling the function.
func (f BuilderFunc) Build() (Editor, error) {
	return f()
}

// AsyncProvider is a Provider that can defer editor construction.
type AsyncProvider interface {
	Provider

	// CreateEditorAsync prepares construction and returns a Builder.
	// Preparation may run anywhere; Build carries the thread-affinity
	// requirements of the provider.
	CreateEditorAsync(ctx context.Context, file File) (Builder, error)
}

// BuilderFor returns a Builder for any provider. Async-capable providers
// supply their own builder; others are wrapped so Build calls CreateEditor.
func BuilderFor(ctx context.Context, p Provider, file File) (Builder, error) {
	if ap, ok := p.(AsyncProvider); ok {
		return ap.CreateEditorAsync(ctx, file)
	}
	return BuilderFunc(func() (Editor, error) {
		return p.CreateEditor(ctx, file)
	}), nil
}
