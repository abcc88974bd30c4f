package split

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/markview/internal/editor"
)

// LayoutListener is notified when a split editor's layout changes.
type LayoutListener func(old, new Layout)

// Editor is a composed dual-pane editor. Its state is the pair of
// sub-editor states plus the current layout.
type Editor struct {
	id     string
	typeID string
	file   editor.File

	mu        sync.Mutex
	layout    Layout
	first     editor.Editor
	second    editor.Editor
	listeners []LayoutListener
	disposed  bool
}

func newEditor(typeID string, file editor.File, first, second editor.Editor, layout Layout) *Editor {
	return &Editor{
		id:     uuid.NewString(),
		typeID: typeID,
		file:   file,
		layout: layout,
		first:  first,
		second: second,
	}
}

// ID returns the unique instance identifier of this editor.
func (e *Editor) ID() string {
	return e.id
}

// TypeID identifies the split provider kind that built this editor.
func (e *Editor) TypeID() string {
	return e.typeID
}

// File returns the file both panes present.
func (e *Editor) File() editor.File {
	return e.file
}

// First returns the first sub-editor.
func (e *Editor) First() editor.Editor {
	return e.first
}

// Second returns the second sub-editor.
func (e *Editor) Second() editor.Editor {
	return e.second
}

// Layout returns the current pane arrangement.
func (e *Editor) Layout() Layout {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layout
}

// SetLayout changes the pane arrangement and notifies listeners.
// Invalid and unchanged layouts are ignored.
func (e *Editor) SetLayout(l Layout) {
	e.mu.Lock()
	if e.disposed || !l.Valid() || l == e.layout {
		e.mu.Unlock()
		return
	}
	old := e.layout
	e.layout = l
	listeners := make([]LayoutListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(old, l)
	}
}

// CycleLayout advances to the next layout in the cycle.
func (e *Editor) CycleLayout() {
	e.SetLayout(e.Layout().Next())
}

// AddLayoutListener registers a callback for layout changes.
// Listeners are invoked outside the editor's lock.
func (e *Editor) AddLayoutListener(fn LayoutListener) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// State captures the current state of both panes and the layout.
func (e *Editor) State() editor.State {
	e.mu.Lock()
	layout := e.layout
	e.mu.Unlock()

	return &EditorState{
		Layout: layout,
		First:  e.first.State(),
		Second: e.second.State(),
	}
}

// SetState applies a split state: the layout and each sub-state that is
// present. Nil sub-states leave the corresponding pane untouched.
func (e *Editor) SetState(st editor.State) error {
	s, ok := st.(*EditorState)
	if !ok {
		return editor.ErrForeignState
	}

	if s.Layout.Valid() {
		e.SetLayout(s.Layout)
	}
	if s.First != nil {
		if err := e.first.SetState(s.First); err != nil {
			return err
		}
	}
	if s.Second != nil {
		if err := e.second.SetState(s.Second); err != nil {
			return err
		}
	}
	return nil
}

// Dispose releases both sub-editors. Safe to call more than once.
func (e *Editor) Dispose() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	e.disposed = true
	e.listeners = nil
	e.mu.Unlock()

	e.first.Dispose()
	e.second.Dispose()
}
