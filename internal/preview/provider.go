package preview

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/markview/internal/editor"
	"github.com/dshills/markview/internal/editor/state"
)

// TypeID identifies the rendered preview provider.
const TypeID = "markup-preview"

const scrollLineAttr = "scroll_line"

// DefaultExtensions are the markup file extensions the preview accepts.
var DefaultExtensions = []string{".adoc", ".asciidoc", ".ad"}

// Provider opens markup files in a rendered preview.
type Provider struct {
	render   RenderFunc
	readFile func(string) ([]byte, error)
	exts     map[string]bool
}

// Option configures a Provider.
type Option func(*Provider)

// WithRender replaces the markup renderer.
func WithRender(fn RenderFunc) Option {
	return func(p *Provider) {
		if fn != nil {
			p.render = fn
		}
	}
}

// WithReadFile replaces the file loader, typically for tests.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(p *Provider) {
		if fn != nil {
			p.readFile = fn
		}
	}
}

// WithExtensions replaces the accepted extension set.
func WithExtensions(exts ...string) Option {
	return func(p *Provider) {
		p.exts = make(map[string]bool, len(exts))
		for _, ext := range exts {
			p.exts[strings.ToLower(ext)] = true
		}
	}
}

// NewProvider creates a preview provider for the default markup extensions.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		render:   Render,
		readFile: os.ReadFile,
	}
	WithExtensions(DefaultExtensions...)(p)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TypeID returns the provider identifier.
func (p *Provider) TypeID() string { return TypeID }

// Accept accepts files by markup extension, case-insensitively.
func (p *Provider) Accept(_ context.Context, file editor.File) bool {
	return p.exts[strings.ToLower(file.Ext())]
}

// Policy places the preview after the default editor when used standalone.
func (p *Provider) Policy() editor.Policy { return editor.PolicyPlaceAfterDefault }

// CreateEditor loads, renders, and opens the file. A missing file renders
// as an empty preview.
func (p *Provider) CreateEditor(_ context.Context, file editor.File) (editor.Editor, error) {
	ed := &Editor{file: file, render: p.render, readFile: p.readFile}
	if err := ed.Refresh(); err != nil {
		return nil, err
	}
	return ed, nil
}

// ReadState restores the scroll position. Absent or malformed attributes
// read back as zero.
func (p *Provider) ReadState(elem *state.Element, _ editor.File) (editor.State, error) {
	line, _ := strconv.Atoi(elem.AttrOr(scrollLineAttr, "0"))
	if line < 0 {
		line = 0
	}
	return &EditorState{ScrollLine: line}, nil
}

// WriteState persists the scroll position.
func (p *Provider) WriteState(st editor.State, _ editor.File, elem *state.Element) error {
	s, ok := st.(*EditorState)
	if !ok {
		return nil
	}
	elem.SetAttr(scrollLineAttr, strconv.Itoa(s.ScrollLine))
	return nil
}

// EditorState is the persisted preview scroll position.
type EditorState struct {
	ScrollLine int
}

// Equals reports whether other is the same scroll position.
func (s *EditorState) Equals(other editor.State) bool {
	o, ok := other.(*EditorState)
	return ok && o.ScrollLine == s.ScrollLine
}
