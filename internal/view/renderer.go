package view

import (
	"fmt"

	"github.com/dshills/markview/internal/editor/split"
)

// Pane supplies display lines for one side of a split. Both the source
// editor and the preview editor satisfy it.
type Pane interface {
	Lines() []string
}

// Renderer draws a split editor onto a backend.
type Renderer struct {
	backend Backend
	ratio   float64

	dividerStyle Style
	statusStyle  Style
}

// NewRenderer creates a renderer for the backend.
func NewRenderer(backend Backend) *Renderer {
	return &Renderer{
		backend:      backend,
		ratio:        DefaultRatio,
		dividerStyle: Style{Dim: true},
		statusStyle:  Style{Reverse: true},
	}
}

// SetRatio changes the first pane's share of the area.
func (r *Renderer) SetRatio(ratio float64) {
	r.ratio = ratio
}

// Draw renders the split editor: both panes, the divider, and a status
// line naming the file and the layout. Panes whose editors do not expose
// display lines are left blank.
func (r *Renderer) Draw(ed *split.Editor) {
	r.backend.Clear()

	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}

	// The bottom row is the status line.
	area := Rect{Left: 0, Top: 0, Right: width, Bottom: height - 1}
	first, second, divider := SplitRects(area, ed.Layout(), r.ratio)

	if pane, ok := ed.First().(Pane); ok {
		r.drawPane(first, pane.Lines())
	}
	if pane, ok := ed.Second().(Pane); ok {
		r.drawPane(second, pane.Lines())
	}
	if !divider.Empty() {
		glyph := '│'
		if divider.Width() > divider.Height() {
			glyph = '─'
		}
		r.backend.Fill(divider, Cell{Rune: glyph, Style: r.dividerStyle})
	}

	r.drawStatus(Rect{Left: 0, Top: height - 1, Right: width, Bottom: height}, ed)
	r.backend.Show()
}

func (r *Renderer) drawPane(rect Rect, lines []string) {
	if rect.Empty() {
		return
	}
	for row := 0; row < rect.Height() && row < len(lines); row++ {
		r.drawText(rect.Left, rect.Top+row, rect.Right, lines[row], Style{})
	}
}

func (r *Renderer) drawStatus(rect Rect, ed *split.Editor) {
	if rect.Empty() {
		return
	}
	r.backend.Fill(rect, Cell{Rune: ' ', Style: r.statusStyle})
	status := fmt.Sprintf(" %s  [%s]", ed.File().Name(), ed.Layout())
	r.drawText(rect.Left, rect.Top, rect.Right, status, r.statusStyle)
}

func (r *Renderer) drawText(x, y, right int, text string, style Style) {
	for _, ch := range text {
		if x >= right {
			return
		}
		r.backend.SetCell(x, y, Cell{Rune: ch, Style: style})
		x++
	}
}
