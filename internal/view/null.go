package view

import "strings"

// Null is an in-memory Backend for tests.
type Null struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        chan Event
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	return &Null{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
}

// Init allocates the cell grid.
func (b *Null) Init() error {
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
	return nil
}

// Fini is a no-op.
func (b *Null) Fini() {}

// Size returns the grid dimensions.
func (b *Null) Size() (int, int) { return b.width, b.height }

// SetCell draws one cell, ignoring out-of-range positions.
func (b *Null) SetCell(x, y int, cell Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// Fill fills a rectangle with the given cell.
func (b *Null) Fill(rect Rect, cell Cell) {
	for y := rect.Top; y < rect.Bottom && y < b.height; y++ {
		for x := rect.Left; x < rect.Right && x < b.width; x++ {
			if x >= 0 && y >= 0 {
				b.cells[y][x] = cell
			}
		}
	}
}

// Clear blanks the grid.
func (b *Null) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
}

// Show is a no-op.
func (b *Null) Show() {}

// ShowCursor places the cursor.
func (b *Null) ShowCursor(x, y int) {
	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

// HideCursor hides the cursor.
func (b *Null) HideCursor() { b.cursorVisible = false }

// PollEvent returns the next posted event.
func (b *Null) PollEvent() Event { return <-b.events }

// PostEvent queues a synthetic event, dropping it if the queue is full.
func (b *Null) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// Cursor returns the cursor position and visibility.
func (b *Null) Cursor() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Row returns the text of one grid row, trailing spaces trimmed.
func (b *Null) Row(y int) string {
	if y < 0 || y >= b.height || b.cells == nil {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[y][x].Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}
