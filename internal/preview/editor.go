package preview

import (
	"os"
	"sync"

	"github.com/dshills/markview/internal/editor"
)

// Editor presents rendered markup with a scrollable viewport.
type Editor struct {
	file     editor.File
	render   RenderFunc
	readFile func(string) ([]byte, error)

	mu       sync.Mutex
	lines    []string
	scroll   int
	disposed bool
}

// TypeID identifies the provider kind that built this editor.
func (e *Editor) TypeID() string { return TypeID }

// File returns the presented file.
func (e *Editor) File() editor.File { return e.file }

// Refresh re-reads the source file and re-renders the preview. A source
// file that no longer exists renders empty; the scroll position is clamped
// to the new content.
func (e *Editor) Refresh() error {
	source, err := e.readFile(e.file.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	lines, err := e.render(source)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return nil
	}
	e.lines = lines
	e.scroll = clampScroll(e.scroll, len(lines))
	return nil
}

// Lines returns the rendered display lines.
func (e *Editor) Lines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines
}

// ScrollLine returns the zero-based first visible line.
func (e *Editor) ScrollLine() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scroll
}

// SetScrollLine moves the viewport, clamping to the rendered content.
func (e *Editor) SetScrollLine(line int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scroll = clampScroll(line, len(e.lines))
}

func clampScroll(line, count int) int {
	if line < 0 || count == 0 {
		return 0
	}
	if line >= count {
		return count - 1
	}
	return line
}

// State captures the scroll position.
func (e *Editor) State() editor.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &EditorState{ScrollLine: e.scroll}
}

// SetState restores a scroll position, clamped to the rendered content.
func (e *Editor) SetState(st editor.State) error {
	s, ok := st.(*EditorState)
	if !ok {
		return editor.ErrForeignState
	}
	e.SetScrollLine(s.ScrollLine)
	return nil
}

// Dispose releases the rendered content.
func (e *Editor) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disposed = true
	e.lines = nil
}
