package split

// Layout names how the two panes of a split editor are arranged.
type Layout string

// Split layouts.
const (
	// LayoutVertical shows the panes side by side.
	LayoutVertical Layout = "vertical"

	// LayoutHorizontal stacks the panes.
	LayoutHorizontal Layout = "horizontal"

	// LayoutFirstOnly shows only the first pane.
	LayoutFirstOnly Layout = "first_only"

	// LayoutSecondOnly shows only the second pane.
	LayoutSecondOnly Layout = "second_only"
)

// Valid reports whether the layout is one of the known arrangements.
func (l Layout) Valid() bool {
	switch l {
	case LayoutVertical, LayoutHorizontal, LayoutFirstOnly, LayoutSecondOnly:
		return true
	default:
		return false
	}
}

// Next cycles to the following layout, wrapping around.
func (l Layout) Next() Layout {
	switch l {
	case LayoutVertical:
		return LayoutHorizontal
	case LayoutHorizontal:
		return LayoutFirstOnly
	case LayoutFirstOnly:
		return LayoutSecondOnly
	default:
		return LayoutVertical
	}
}
