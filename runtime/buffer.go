package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/whisker/backend"
)

// Cell represents a single character cell in the buffer.
type Cell struct {
	Rune  rune
	Style backend.Style
}

// Buffer is a 2D grid of cells for rendering widgets.
// Widgets render into their assigned area, then the buffer is flushed to
// the backend. Supports dirty-region tracking for partial redraws.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirty      []bool
	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		cells:  make([]Cell, w*h),
		dirty:  make([]bool, w*h),
		width:  w,
		height: h,
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Area returns the full buffer area as a rect at the origin.
func (b *Buffer) Area() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Resize changes the buffer dimensions, preserving content where possible.
func (b *Buffer) Resize(w, h int) {
	if w == b.width && h == b.height {
		return
	}
	newCells := make([]Cell, w*h)
	newDirty := make([]bool, w*h)
	for y := 0; y < min(h, b.height); y++ {
		for x := 0; x < min(w, b.width); x++ {
			newCells[y*w+x] = b.cells[y*b.width+x]
		}
	}
	b.cells = newCells
	b.dirty = newDirty
	b.width = w
	b.height = h
	b.MarkAllDirty()
}

// Clear fills the buffer with spaces and default style.
func (b *Buffer) Clear() {
	b.Fill(Rect{0, 0, b.width, b.height}, ' ', backend.DefaultStyle())
}

// ClearRect fills a rectangular region with spaces and default style.
func (b *Buffer) ClearRect(r Rect) {
	b.Fill(r, ' ', backend.DefaultStyle())
}

// Get returns the cell at position (x, y).
// Returns an empty cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with style at position (x, y).
// No-op if out of bounds. Marks the cell as dirty if changed.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	old := b.cells[idx]
	if old.Rune != r || old.Style != s {
		b.cells[idx] = Cell{Rune: r, Style: s}
		b.markCellDirty(x, y, idx)
	}
}

// SetString writes a string starting at (x, y) and returns the x position
// after the last written cell. Wide runes occupy two cells; the shadow cell
// is zeroed so the backend does not draw over the glyph. Clips to buffer
// bounds.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	if y < 0 || y >= b.height {
		return x
	}
	px := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if px+w > b.width {
			break
		}
		if px >= 0 {
			b.Set(px, y, r, style)
			if w == 2 {
				b.Set(px+1, y, 0, style)
			}
		}
		px += w
	}
	return px
}

// Fill fills a rectangular region with a rune and style.
// Marks changed cells as dirty.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	x0 := max(0, r.X)
	y0 := max(0, r.Y)
	x1 := min(b.width, r.X+r.Width)
	y1 := min(b.height, r.Y+r.Height)

	cell := Cell{Rune: ch, Style: s}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			idx := y*b.width + x
			if b.cells[idx] != cell {
				b.cells[idx] = cell
				b.markCellDirty(x, y, idx)
			}
		}
	}
}

// BorderRunes holds the glyphs for drawing a box: corners in the order
// top-left, top-right, bottom-left, bottom-right, then the horizontal and
// vertical edge runes.
type BorderRunes [6]rune

// PlainBorder is the default single-line box drawing set.
var PlainBorder = BorderRunes{'┌', '┐', '└', '┘', '─', '│'}

// DrawBox draws a full border around a rect using the given rune set.
func (b *Buffer) DrawBox(r Rect, runes BorderRunes, s backend.Style) {
	b.DrawBorder(r, runes, true, true, true, true, s)
}

// DrawBorder draws the selected sides of a border around a rect. A corner
// is drawn when both of its sides are present.
func (b *Buffer) DrawBorder(r Rect, runes BorderRunes, top, right, bottom, left bool, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}

	x1 := r.X + r.Width - 1
	y1 := r.Y + r.Height - 1

	if top {
		for x := r.X + 1; x < x1; x++ {
			b.Set(x, r.Y, runes[4], s)
		}
	}
	if bottom {
		for x := r.X + 1; x < x1; x++ {
			b.Set(x, y1, runes[4], s)
		}
	}
	if left {
		for y := r.Y + 1; y < y1; y++ {
			b.Set(r.X, y, runes[5], s)
		}
	}
	if right {
		for y := r.Y + 1; y < y1; y++ {
			b.Set(x1, y, runes[5], s)
		}
	}

	if top && left {
		b.Set(r.X, r.Y, runes[0], s)
	}
	if top && right {
		b.Set(x1, r.Y, runes[1], s)
	}
	if bottom && left {
		b.Set(r.X, y1, runes[2], s)
	}
	if bottom && right {
		b.Set(x1, y1, runes[3], s)
	}
}

// Flush blits dirty cells to the render target and clears the dirty set.
func (b *Buffer) Flush(target backend.RenderTarget) {
	b.ForEachDirtyCell(func(x, y int, cell Cell) {
		target.SetContent(x, y, cell.Rune, nil, cell.Style)
	})
	b.ClearDirty()
}

// SubBuffer is a view into a rectangular region of the buffer.
// Writes are translated and clipped to the region.
type SubBuffer struct {
	parent *Buffer
	bounds Rect
}

// Sub creates a SubBuffer for the given region.
func (b *Buffer) Sub(r Rect) *SubBuffer {
	return &SubBuffer{parent: b, bounds: r}
}

// Size returns the sub-buffer dimensions.
func (s *SubBuffer) Size() (w, h int) {
	return s.bounds.Width, s.bounds.Height
}

// Set writes a rune at position relative to the sub-buffer.
func (s *SubBuffer) Set(x, y int, r rune, style backend.Style) {
	if x < 0 || x >= s.bounds.Width || y < 0 || y >= s.bounds.Height {
		return
	}
	s.parent.Set(s.bounds.X+x, s.bounds.Y+y, r, style)
}

// SetString writes a string at position relative to the sub-buffer.
func (s *SubBuffer) SetString(x, y int, str string, style backend.Style) {
	if y < 0 || y >= s.bounds.Height {
		return
	}
	px := x
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if px+w > s.bounds.Width {
			break
		}
		if px >= 0 {
			s.parent.Set(s.bounds.X+px, s.bounds.Y+y, r, style)
			if w == 2 {
				s.parent.Set(s.bounds.X+px+1, s.bounds.Y+y, 0, style)
			}
		}
		px += w
	}
}

// Fill fills a region relative to the sub-buffer.
func (s *SubBuffer) Fill(r Rect, ch rune, style backend.Style) {
	clipped := r.Intersection(Rect{0, 0, s.bounds.Width, s.bounds.Height})
	if clipped.Width == 0 || clipped.Height == 0 {
		return
	}
	s.parent.Fill(Rect{
		X:      s.bounds.X + clipped.X,
		Y:      s.bounds.Y + clipped.Y,
		Width:  clipped.Width,
		Height: clipped.Height,
	}, ch, style)
}

// Clear fills the sub-buffer region with spaces.
func (s *SubBuffer) Clear() {
	s.Fill(Rect{0, 0, s.bounds.Width, s.bounds.Height}, ' ', backend.DefaultStyle())
}

// --- Dirty tracking ---

func (b *Buffer) markCellDirty(x, y, idx int) {
	if !b.dirty[idx] {
		b.dirty[idx] = true
		b.dirtyCount++

		if b.dirtyCount == 1 {
			b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
		} else {
			if x < b.dirtyRect.X {
				b.dirtyRect.Width += b.dirtyRect.X - x
				b.dirtyRect.X = x
			} else if x >= b.dirtyRect.X+b.dirtyRect.Width {
				b.dirtyRect.Width = x - b.dirtyRect.X + 1
			}
			if y < b.dirtyRect.Y {
				b.dirtyRect.Height += b.dirtyRect.Y - y
				b.dirtyRect.Y = y
			} else if y >= b.dirtyRect.Y+b.dirtyRect.Height {
				b.dirtyRect.Height = y - b.dirtyRect.Y + 1
			}
		}
	}
}

// MarkAllDirty marks the entire buffer as dirty.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
	b.dirtyRect = Rect{X: 0, Y: 0, Width: b.width, Height: b.height}
}

// ClearDirty resets all dirty flags.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
}

// IsDirty returns true if any cells have changed.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount returns the number of dirty cells.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// DirtyRect returns the bounding box of dirty cells.
// Returns an empty rect if nothing is dirty.
func (b *Buffer) DirtyRect() Rect {
	return b.dirtyRect
}

// IsCellDirty returns true if the cell at (x, y) is dirty.
func (b *Buffer) IsCellDirty(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.dirty[y*b.width+x]
}

// ForEachDirtyCell calls fn for each dirty cell.
// More efficient than iterating all cells when few are dirty.
func (b *Buffer) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	if b.dirtyCount == 0 {
		return
	}
	if b.dirtyCount > b.width*b.height/2 {
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				idx := y*b.width + x
				if b.dirty[idx] {
					fn(x, y, b.cells[idx])
				}
			}
		}
		return
	}
	for y := b.dirtyRect.Y; y < b.dirtyRect.Y+b.dirtyRect.Height && y < b.height; y++ {
		for x := b.dirtyRect.X; x < b.dirtyRect.X+b.dirtyRect.Width && x < b.width; x++ {
			idx := y*b.width + x
			if b.dirty[idx] {
				fn(x, y, b.cells[idx])
			}
		}
	}
}
