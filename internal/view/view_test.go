package view_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/dshills/markview/internal/editor"
	"github.com/dshills/markview/internal/editor/split"
	"github.com/dshills/markview/internal/editor/text"
	"github.com/dshills/markview/internal/preview"
	"github.com/dshills/markview/internal/view"
)

func TestSplitRectsVertical(t *testing.T) {
	area := view.Rect{Left: 0, Top: 0, Right: 80, Bottom: 24}
	first, second, divider := view.SplitRects(area, split.LayoutVertical, 0.5)

	if first.Width() != 40 || first.Height() != 24 {
		t.Errorf("first pane: got %dx%d", first.Width(), first.Height())
	}
	if divider.Left != 40 || divider.Width() != 1 || divider.Height() != 24 {
		t.Errorf("divider: got %+v", divider)
	}
	if second.Left != 41 || second.Right != 80 {
		t.Errorf("second pane: got %+v", second)
	}
}

func TestSplitRectsHorizontal(t *testing.T) {
	area := view.Rect{Left: 0, Top: 0, Right: 80, Bottom: 24}
	first, second, divider := view.SplitRects(area, split.LayoutHorizontal, 0.5)

	if first.Height() != 12 || first.Width() != 80 {
		t.Errorf("first pane: got %dx%d", first.Width(), first.Height())
	}
	if divider.Top != 12 || divider.Height() != 1 {
		t.Errorf("divider: got %+v", divider)
	}
	if second.Top != 13 || second.Bottom != 24 {
		t.Errorf("second pane: got %+v", second)
	}
}

func TestSplitRectsSinglePane(t *testing.T) {
	area := view.Rect{Left: 0, Top: 0, Right: 80, Bottom: 24}

	first, second, divider := view.SplitRects(area, split.LayoutFirstOnly, 0.5)
	if first != area || !second.Empty() || !divider.Empty() {
		t.Error("expected first_only to give the whole area to the first pane")
	}

	first, second, divider = view.SplitRects(area, split.LayoutSecondOnly, 0.5)
	if second != area || !first.Empty() || !divider.Empty() {
		t.Error("expected second_only to give the whole area to the second pane")
	}
}

func TestSplitRectsRatioClamped(t *testing.T) {
	area := view.Rect{Left: 0, Top: 0, Right: 100, Bottom: 24}

	first, _, _ := view.SplitRects(area, split.LayoutVertical, 0.001)
	if first.Width() != 10 {
		t.Errorf("expected ratio clamped to 0.1, first width %d", first.Width())
	}
	first, _, _ = view.SplitRects(area, split.LayoutVertical, 99)
	if first.Width() != 90 {
		t.Errorf("expected ratio clamped to 0.9, first width %d", first.Width())
	}
}

func TestSplitRectsEmptyArea(t *testing.T) {
	first, second, divider := view.SplitRects(view.Rect{}, split.LayoutVertical, 0.5)
	if !first.Empty() || !second.Empty() || !divider.Empty() {
		t.Error("expected all-empty rects for an empty area")
	}
}

func TestNullBackendDrawing(t *testing.T) {
	b := view.NewNull(10, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	b.SetCell(0, 0, view.Cell{Rune: 'a'})
	b.SetCell(-1, 0, view.Cell{Rune: 'x'})
	b.SetCell(0, 99, view.Cell{Rune: 'x'})
	if b.Row(0) != "a" {
		t.Errorf("expected row %q, got %q", "a", b.Row(0))
	}

	b.Fill(view.Rect{Left: 0, Top: 1, Right: 3, Bottom: 2}, view.Cell{Rune: '-'})
	if b.Row(1) != "---" {
		t.Errorf("expected row %q, got %q", "---", b.Row(1))
	}

	b.ShowCursor(2, 1)
	if x, y, visible := b.Cursor(); x != 2 || y != 1 || !visible {
		t.Errorf("cursor: got (%d,%d,%v)", x, y, visible)
	}
	b.HideCursor()
	if _, _, visible := b.Cursor(); visible {
		t.Error("expected hidden cursor")
	}
}

func newSplitEditor(t *testing.T) *split.Editor {
	t.Helper()

	readFile := func(path string) ([]byte, error) {
		if path == "doc.adoc" {
			return []byte("= Doc\nsource body"), nil
		}
		return nil, os.ErrNotExist
	}
	p, err := split.NewProvider(
		text.NewProvider(text.WithReadFile(readFile)),
		preview.NewProvider(preview.WithReadFile(readFile)),
		nil,
	)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	ed, err := p.CreateEditor(context.Background(), editor.File{Path: "doc.adoc"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return ed.(*split.Editor)
}

func TestRendererDrawsBothPanes(t *testing.T) {
	b := view.NewNull(40, 10)
	if err := b.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	ed := newSplitEditor(t)

	r := view.NewRenderer(b)
	r.Draw(ed)

	if !strings.HasPrefix(b.Row(0), "= Doc") {
		t.Errorf("expected source in the first pane, row 0 = %q", b.Row(0))
	}
	if !strings.Contains(b.Row(0), "│") {
		t.Errorf("expected a vertical divider, row 0 = %q", b.Row(0))
	}
	if !strings.Contains(b.Row(0), "Doc") {
		t.Errorf("expected rendered title in the second pane, row 0 = %q", b.Row(0))
	}
	if !strings.Contains(b.Row(9), "doc.adoc") || !strings.Contains(b.Row(9), "vertical") {
		t.Errorf("expected status line, row 9 = %q", b.Row(9))
	}
}

func TestRendererSecondOnlyLayout(t *testing.T) {
	b := view.NewNull(40, 10)
	if err := b.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	ed := newSplitEditor(t)
	ed.SetLayout(split.LayoutSecondOnly)

	view.NewRenderer(b).Draw(ed)

	if strings.Contains(b.Row(0), "│") {
		t.Errorf("expected no divider in a single-pane layout, row 0 = %q", b.Row(0))
	}
	if !strings.HasPrefix(b.Row(0), "Doc") {
		t.Errorf("expected rendered preview at the left edge, row 0 = %q", b.Row(0))
	}
}
