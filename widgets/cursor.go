package widgets

// CursorState is the shared cursor machine behind the scrollable widgets.
// The cursor always stays inside [0, length); an empty collection pins it
// at zero.
type CursorState struct {
	index  int
	length int
}

// Index returns the current cursor position.
func (c *CursorState) Index() int { return c.index }

// Len returns the collection length.
func (c *CursorState) Len() int { return c.length }

// SetLength updates the collection length and re-clamps the cursor.
func (c *CursorState) SetLength(n int) {
	if n < 0 {
		n = 0
	}
	c.length = n
	if c.index >= n {
		c.index = max(0, n-1)
	}
}

// SetIndex moves the cursor to i, clamped to the collection bounds.
func (c *CursorState) SetIndex(i int) {
	if c.length == 0 || i < 0 {
		c.index = 0
		return
	}
	c.index = min(i, c.length-1)
}

// Incr advances the cursor by one. At the last entry it wraps to the
// first when rewind is set, otherwise it stays put.
func (c *CursorState) Incr(rewind bool) {
	if c.length == 0 {
		return
	}
	if c.index+1 < c.length {
		c.index++
	} else if rewind {
		c.index = 0
	}
}

// Decr moves the cursor back by one. At the first entry it wraps to the
// last when rewind is set, otherwise it stays put.
func (c *CursorState) Decr(rewind bool) {
	if c.length == 0 {
		return
	}
	if c.index > 0 {
		c.index--
	} else if rewind {
		c.index = c.length - 1
	}
}

// ScrollAhead advances by min(step, remaining). Scrolling never wraps.
func (c *CursorState) ScrollAhead(step int) {
	if c.length == 0 {
		return
	}
	remaining := c.length - 1 - c.index
	c.index += min(step, remaining)
}

// ScrollBehind moves back by min(step, index). Scrolling never wraps.
func (c *CursorState) ScrollBehind(step int) {
	c.index -= min(step, c.index)
}

// Begin jumps to the first entry.
func (c *CursorState) Begin() {
	c.index = 0
}

// End jumps to the last entry.
func (c *CursorState) End() {
	if c.length > 0 {
		c.index = c.length - 1
	}
}
