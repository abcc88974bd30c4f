package preview_test

import (
	"context"
	"os"
	"testing"

	"github.com/dshills/markview/internal/editor"
	"github.com/dshills/markview/internal/editor/state"
	"github.com/dshills/markview/internal/preview"
)

func memFS(files map[string]string) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		content, ok := files[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(content), nil
	}
}

func TestAcceptByExtension(t *testing.T) {
	p := preview.NewProvider()
	ctx := context.Background()

	tests := []struct {
		path string
		want bool
	}{
		{"guide.adoc", true},
		{"guide.asciidoc", true},
		{"guide.ad", true},
		{"GUIDE.ADOC", true},
		{"guide.md", false},
		{"guide.txt", false},
		{"adoc", false},
	}
	for _, tt := range tests {
		if got := p.Accept(ctx, editor.File{Path: tt.path}); got != tt.want {
			t.Errorf("Accept(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestAcceptCustomExtensions(t *testing.T) {
	p := preview.NewProvider(preview.WithExtensions(".md"))
	ctx := context.Background()

	if !p.Accept(ctx, editor.File{Path: "notes.md"}) {
		t.Error("expected .md to be accepted")
	}
	if p.Accept(ctx, editor.File{Path: "guide.adoc"}) {
		t.Error("expected .adoc to be rejected with custom extensions")
	}
}

func TestRenderHeadingsAndComments(t *testing.T) {
	lines, err := preview.Render([]byte("= Title\n// hidden\n== Section\nbody\n:author: Jane"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := []string{"Title", "=====", "Section", "-------", "body"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestCreateEditorRenders(t *testing.T) {
	p := preview.NewProvider(preview.WithReadFile(memFS(map[string]string{
		"doc.adoc": "= Doc\nbody",
	})))

	ed, err := p.CreateEditor(context.Background(), editor.File{Path: "doc.adoc"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	pe := ed.(*preview.Editor)
	if len(pe.Lines()) != 3 {
		t.Errorf("expected 3 rendered lines, got %d", len(pe.Lines()))
	}
}

func TestRefreshPicksUpChanges(t *testing.T) {
	files := map[string]string{"doc.adoc": "one"}
	p := preview.NewProvider(preview.WithReadFile(memFS(files)))

	ed, err := p.CreateEditor(context.Background(), editor.File{Path: "doc.adoc"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	pe := ed.(*preview.Editor)

	files["doc.adoc"] = "one\ntwo\nthree"
	if err := pe.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(pe.Lines()) != 3 {
		t.Errorf("expected 3 lines after refresh, got %d", len(pe.Lines()))
	}

	// Deleting the source renders empty and clamps the scroll.
	pe.SetScrollLine(2)
	delete(files, "doc.adoc")
	if err := pe.Refresh(); err != nil {
		t.Fatalf("refresh after delete: %v", err)
	}
	if pe.ScrollLine() != 0 {
		t.Errorf("expected scroll clamped to 0, got %d", pe.ScrollLine())
	}
}

func TestScrollClamping(t *testing.T) {
	p := preview.NewProvider(preview.WithReadFile(memFS(map[string]string{
		"doc.adoc": "a\nb\nc",
	})))
	ed, _ := p.CreateEditor(context.Background(), editor.File{Path: "doc.adoc"})
	pe := ed.(*preview.Editor)

	pe.SetScrollLine(99)
	if pe.ScrollLine() != 2 {
		t.Errorf("expected scroll clamped to 2, got %d", pe.ScrollLine())
	}
	pe.SetScrollLine(-1)
	if pe.ScrollLine() != 0 {
		t.Errorf("expected scroll clamped to 0, got %d", pe.ScrollLine())
	}
}

func TestScrollStateRoundTrip(t *testing.T) {
	p := preview.NewProvider()
	file := editor.File{Path: "doc.adoc"}

	in := &preview.EditorState{ScrollLine: 7}
	elem := state.NewElement("second_editor")
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
