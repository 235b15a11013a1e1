package tui

import "strings"

// Buffer is a double-buffered 2D grid of cells.
// Paint writes go to the back buffer; Diff reports what changed since the
// last Swap.
type Buffer struct {
	front  []Cell // Currently displayed state
	back   []Cell // State being built
	width  int
	height int
}

// CellChange represents a single cell that differs between front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a new double-buffered grid of the specified dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Size {
	return Size{Width: b.width, Height: b.height}
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// Resize reallocates both grids. Content is discarded, and the front grid is
// zeroed so the next Diff reports every cell.
func (b *Buffer) Resize(width, height int) {
	width = max(0, width)
	height = max(0, height)
	b.width = width
	b.height = height
	b.front = make([]Cell, width*height)
	b.back = make([]Cell, width*height)
	blank := NewCell(' ', NewStyle())
	for i := range b.back {
		b.back[i] = blank
	}
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y) from the back buffer.
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.back[idx]
}

// SetCell sets the cell at position (x, y) in the back buffer.
func (b *Buffer) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.back[idx] = c
}

// SetRune sets a rune at (x, y). A wide rune that would straddle the right
// edge is replaced by a space.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}
	width := RuneWidth(r)
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', style))
		return
	}
	b.SetCell(x, y, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Style: style})
	}
}

// SetStringClipped writes s starting at (x, y), dropping every cell that
// falls outside clip. Returns the display width written.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX >= clip.Right() {
			break
		}
		if curX >= clip.X && curX+width <= clip.Right() {
			b.SetRune(curX, y, r, style)
			written += width
		}
		curX += width
	}
	return written
}

// SetString writes s starting at (x, y), stopping at the buffer edge.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, s, style, b.Rect())
}

// Fill fills a rectangle with the given rune and style.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetRune(x, y, r, style)
		}
	}
}

// Clear resets the back buffer to blank cells.
func (b *Buffer) Clear() {
	blank := NewCell(' ', NewStyle())
	for i := range b.back {
		b.back[i] = blank
	}
}

// Diff returns the cells whose back value differs from the front value,
// in row-major order.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for i := range b.back {
		if !b.back[i].Equal(b.front[i]) {
			changes = append(changes, CellChange{X: i % b.width, Y: i / b.width, Cell: b.back[i]})
		}
	}
	return changes
}

// Swap makes the back buffer the displayed state.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// String renders the back buffer as text, one line per row, trailing
// spaces trimmed.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		var sb strings.Builder
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}
