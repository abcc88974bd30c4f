package view

// Style holds the display attributes of a cell.
type Style struct {
	Bold    bool
	Dim     bool
	Reverse bool
}

// Cell is one terminal cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// Rect is a half-open screen rectangle: Left/Top inclusive,
// Right/Bottom exclusive.
type Rect struct {
	Left, Top     int
	Right, Bottom int
}

// Width returns the rectangle width.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the rectangle height.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// EventType identifies a terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Key identifies a pressed key.
type Key int

// Keys the editor loop reacts to.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlR
)

// Event is a terminal event.
type Event struct {
	Type EventType

	Key  Key
	Rune rune

	Width, Height int
}

// Backend is a display surface for split editors.
type Backend interface {
	// Init prepares the surface. Must be called before drawing.
	Init() error

	// Fini releases the surface and restores the terminal.
	Fini()

	// Size returns the surface dimensions.
	Size() (width, height int)

	// SetCell draws one cell. Out-of-range positions are ignored.
	SetCell(x, y int, cell Cell)

	// Fill fills a rectangle with the given cell.
	Fill(rect Rect, cell Cell)

	// Clear blanks the whole surface.
	Clear()

	// Show flushes pending drawing to the display.
	Show()

	// ShowCursor places the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event
}
