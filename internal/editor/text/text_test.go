package text_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dshills/markview/internal/editor"
	"github.com/dshills/markview/internal/editor/state"
	"github.com/dshills/markview/internal/editor/text"
)

func memFS(files map[string]string) text.ReadFileFunc {
	return func(path string) ([]byte, error) {
		content, ok := files[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(content), nil
	}
}

func TestCreateEditorLoadsContent(t *testing.T) {
	p := text.NewProvider(text.WithReadFile(memFS(map[string]string{
		"doc.adoc": "= Title\n\nFirst paragraph.",
	})))

	ed, err := p.CreateEditor(context.Background(), editor.File{Path: "doc.adoc"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	te := ed.(*text.Editor)
	if te.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", te.LineCount())
	}
	if te.Line(0) != "= Title" {
		t.Errorf("expected title line, got %q", te.Line(0))
	}
	if te.Line(99) != "" {
		t.Error("expected out-of-range line to be empty")
	}
}

func TestCreateEditorMissingFileOpensEmpty(t *testing.T) {
	p := text.NewProvider(text.WithReadFile(memFS(nil)))

	ed, err := p.CreateEditor(context.Background(), editor.File{Path: "new.adoc"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ed.(*text.Editor).LineCount() != 1 {
		t.Error("expected a single empty line for a new file")
	}
}

func TestCreateEditorReadError(t *testing.T) {
	p := text.NewProvider(text.WithReadFile(func(string) ([]byte, error) {
		return nil, errors.New("disk failure")
	}))
	if _, err := p.CreateEditor(context.Background(), editor.File{Path: "doc.adoc"}); err == nil {
		t.Error("expected read errors other than not-exist to fail")
	}
}

func TestCaretClamping(t *testing.T) {
	p := text.NewProvider(text.WithReadFile(memFS(map[string]string{
		"doc.adoc": "short\nlonger line",
	})))
	ed, _ := p.CreateEditor(context.Background(), editor.File{Path: "doc.adoc"})
	te := ed.(*text.Editor)

	te.SetCaret(1, 6)
	if line, col := te.Caret(); line != 1 || col != 6 {
		t.Errorf("expected caret (1,6), got (%d,%d)", line, col)
	}

	te.SetCaret(50, 50)
	if line, col := te.Caret(); line != 1 || col != 11 {
		t.Errorf("expected caret clamped to (1,11), got (%d,%d)", line, col)
	}

	te.SetCaret(-3, -3)
	if line, col := te.Caret(); line != 0 || col != 0 {
		t.Errorf("expected caret clamped to (0,0), got (%d,%d)", line, col)
	}
}

func TestCaretStateRoundTrip(t *testing.T) {
	p := text.NewProvider()
	file := editor.File{Path: "doc.adoc"}

	in := &text.EditorState{Line: 12, Column: 4}
	elem := state.NewElement("first_editor")
	if err := p.WriteState(in, file, elem); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := p.ReadState(elem, file)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !in.Equals(out) {
		t.Errorf("round trip mismatch: got %+v", out)
	}
}

func TestReadStateMalformed(t *testing.T) {
	p := text.NewProvider()
	elem := state.NewElement("first_editor")
	elem.SetAttr("caret_line", "twelve")
	elem.SetAttr("caret_column", "-4")

	st, err := p.ReadState(elem, editor.File{Path: "doc.adoc"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s := st.(*text.EditorState)
	if s.Line != 0 || s.Column != 0 {
		t.Errorf("expected malformed caret to read as (0,0), got (%d,%d)", s.Line, s.Column)
	}
}

func TestSetStateForeign(t *testing.T) {
	p := text.NewProvider(text.WithReadFile(memFS(map[string]string{"doc.adoc": "x"})))
	ed, _ := p.CreateEditor(context.Background(), editor.File{Path: "doc.adoc"})

	if err := ed.SetState(&otherState{}); !errors.Is(err, editor.ErrForeignState) {
		t.Errorf("expected ErrForeignState, got %v", err)
	}
}

type otherState struct{}

func (*otherState) Equals(editor.State) bool { return false }
