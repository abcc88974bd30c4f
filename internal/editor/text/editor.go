package text

import (
	"strings"
	"sync"

	"github.com/dshills/markview/internal/editor"
)

// Editor presents a file's source text with a movable caret.
type Editor struct {
	file editor.File

	mu       sync.Mutex
	lines    []string
	line     int
	column   int
	disposed bool
}

func newEditor(file editor.File, content []byte) *Editor {
	return &Editor{
		file:  file,
		lines: splitLines(content),
	}
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{""}
	}
	return strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
}

// TypeID identifies the provider kind that built this editor.
func (e *Editor) TypeID() string { return TypeID }

// File returns the presented file.
func (e *Editor) File() editor.File { return e.file }

// LineCount returns the number of lines in the buffer.
func (e *Editor) LineCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines)
}

// Line returns the text of the zero-based line, or "" if out of range.
func (e *Editor) Line(n int) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n < 0 || n >= len(e.lines) {
		return ""
	}
	return e.lines[n]
}

// Lines returns a copy of the buffer lines.
func (e *Editor) Lines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	lines := make([]string, len(e.lines))
	copy(lines, e.lines)
	return lines
}

// Caret returns the zero-based caret position.
func (e *Editor) Caret() (line, column int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.line, e.column
}

// SetCaret moves the caret, clamping to the buffer bounds.
func (e *Editor) SetCaret(line, column int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setCaretLocked(line, column)
}

func (e *Editor) setCaretLocked(line, column int) {
	if len(e.lines) == 0 {
		return
	}
	if line < 0 {
		line = 0
	}
	if line >= len(e.lines) {
		line = len(e.lines) - 1
	}
	if column < 0 {
		column = 0
	}
	if max := len(e.lines[line]); column > max {
		column = max
	}
	e.line = line
	e.column = column
}

// State captures the caret position.
func (e *Editor) State() editor.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &EditorState{Line: e.line, Column: e.column}
}

// SetState restores a caret position. Positions beyond the buffer are
// clamped rather than rejected; the file may have shrunk since the state
// was captured.
func (e *Editor) SetState(st editor.State) error {
	s, ok := st.(*EditorState)
	if !ok {
		return editor.ErrForeignState
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setCaretLocked(s.Line, s.Column)
	return nil
}

// Dispose releases the buffer.
func (e *Editor) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disposed = true
	e.lines = nil
}
