package text

import (
	"context"
	"os"
	"strconv"

	"github.com/dshills/markview/internal/editor"
	"github.com/dshills/markview/internal/editor/state"
)

// TypeID identifies the plain source editor provider.
const TypeID = "text-editor"

// Caret state attribute names.
const (
	caretLineAttr   = "caret_line"
	caretColumnAttr = "caret_column"
)

// ReadFileFunc loads file contents. It matches os.ReadFile.
type ReadFileFunc func(path string) ([]byte, error)

// Provider opens any file in a plain source editor.
type Provider struct {
	readFile ReadFileFunc
}

// Option configures a Provider.
type Option func(*Provider)

// WithReadFile replaces the file loader, typically for tests.
func WithReadFile(fn ReadFileFunc) Option {
	return func(p *Provider) {
		if fn != nil {
			p.readFile = fn
		}
	}
}

// NewProvider creates a source editor provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{readFile: os.ReadFile}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TypeID returns the provider identifier.
func (p *Provider) TypeID() string { return TypeID }

// Accept accepts every file; source text is the universal fallback view.
func (p *Provider) Accept(_ context.Context, _ editor.File) bool { return true }

// Policy lets the host decide placement.
func (p *Provider) Policy() editor.Policy { return editor.PolicyDefault }

// CreateEditor loads the file and opens it at the top. A file that does
// not exist yet opens empty rather than failing, so new documents can be
// created through the editor.
func (p *Provider) CreateEditor(_ context.Context, file editor.File) (editor.Editor, error) {
	content, err := p.readFile(file.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		content = nil
	}
	return newEditor(file, content), nil
}

// ReadState restores the caret position. Absent or malformed attributes
// read back as zero, the top of the file.
func (p *Provider) ReadState(elem *state.Element, _ editor.File) (editor.State, error) {
	line, _ := strconv.Atoi(elem.AttrOr(caretLineAttr, "0"))
	col, _ := strconv.Atoi(elem.AttrOr(caretColumnAttr, "0"))
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return &EditorState{Line: line, Column: col}, nil
}

// WriteState persists the caret position. A zero caret still writes its
// attributes; zero is a real position, not an absence.
func (p *Provider) WriteState(st editor.State, _ editor.File, elem *state.Element) error {
	s, ok := st.(*EditorState)
	if !ok {
		return nil
	}
	elem.SetAttr(caretLineAttr, strconv.Itoa(s.Line))
	elem.SetAttr(caretColumnAttr, strconv.Itoa(s.Column))
	return nil
}

// EditorState is the persisted caret position, zero-based.
type EditorState struct {
	Line   int
	Column int
}

// Equals reports whether other is the same caret position.
func (s *EditorState) Equals(other editor.State) bool {
	o, ok := other.(*EditorState)
	return ok && o.Line == s.Line && o.Column == s.Column
}
