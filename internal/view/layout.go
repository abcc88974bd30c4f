package view

import "github.com/dshills/markview/internal/editor/split"

// DefaultRatio is the share of the area given to the first pane.
const DefaultRatio = 0.5

// SplitRects divides area between the two panes of a split editor.
// The divider rectangle is the one-cell strip between visible panes; it is
// empty for single-pane layouts. The ratio is the first pane's share and
// is clamped to keep both panes visible.
func SplitRects(area Rect, layout split.Layout, ratio float64) (first, second, divider Rect) {
	if area.Empty() {
		return Rect{}, Rect{}, Rect{}
	}
	if ratio <= 0 {
		ratio = DefaultRatio
	}
	if ratio < 0.1 {
		ratio = 0.1
	}
	if ratio > 0.9 {
		ratio = 0.9
	}

	switch layout {
	case split.LayoutFirstOnly:
		return area, Rect{}, Rect{}

	case split.LayoutSecondOnly:
		return Rect{}, area, Rect{}

	case split.LayoutHorizontal:
		cut := area.Top + int(float64(area.Height())*ratio)
		if cut <= area.Top {
			cut = area.Top + 1
		}
		if cut >= area.Bottom-1 {
			cut = area.Bottom - 2
		}
		if cut <= area.Top {
			// Too short to split; the first pane wins.
			return area, Rect{}, Rect{}
		}
		first = Rect{Left: area.Left, Top: area.Top, Right: area.Right, Bottom: cut}
		divider = Rect{Left: area.Left, Top: cut, Right: area.Right, Bottom: cut + 1}
		second = Rect{Left: area.Left, Top: cut + 1, Right: area.Right, Bottom: area.Bottom}
		return first, second, divider

	default: // LayoutVertical and anything unrecognized
		cut := area.Left + int(float64(area.Width())*ratio)
		if cut <= area.Left {
			cut = area.Left + 1
		}
		if cut >= area.Right-1 {
			cut = area.Right - 2
		}
		if cut <= area.Left {
			return area, Rect{}, Rect{}
		}
		first = Rect{Left: area.Left, Top: area.Top, Right: cut, Bottom: area.Bottom}
		divider = Rect{Left: cut, Top: area.Top, Right: cut + 1, Bottom: area.Bottom}
		second = Rect{Left: cut + 1, Top: area.Top, Right: area.Right, Bottom: area.Bottom}
		return first, second, divider
	}
}
