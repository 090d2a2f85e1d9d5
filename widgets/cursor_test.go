package widgets

import "testing"

func TestCursorIncrDecr(t *testing.T) {
	var c CursorState
	c.SetLength(3)

	c.Incr(false)
	c.Incr(false)
	if c.Index() != 2 {
		t.Fatalf("index = %d, want 2", c.Index())
	}
	c.Incr(false)
	if c.Index() != 2 {
		t.Errorf("non-rewind Incr at end moved to %d", c.Index())
	}
	c.Incr(true)
	if c.Index() != 0 {
		t.Errorf("rewind Incr at end = %d, want 0", c.Index())
	}
	c.Decr(false)
	if c.Index() != 0 {
		t.Errorf("non-rewind Decr at begin moved to %d", c.Index())
	}
	c.Decr(true)
	if c.Index() != 2 {
		t.Errorf("rewind Decr at begin = %d, want 2", c.Index())
	}
}

func TestCursorScrollNeverWraps(t *testing.T) {
	var c CursorState
	c.SetLength(7)
	c.SetIndex(1)

	c.ScrollAhead(4)
	if c.Index() != 5 {
		t.Fatalf("scroll ahead = %d, want 5", c.Index())
	}
	c.ScrollAhead(4)
	if c.Index() != 6 {
		t.Errorf("clipped scroll ahead = %d, want 6", c.Index())
	}
	c.ScrollAhead(4)
	if c.Index() != 6 {
		t.Errorf("scroll at end moved to %d", c.Index())
	}
	c.ScrollBehind(4)
	if c.Index() != 2 {
		t.Errorf("scroll behind = %d, want 2", c.Index())
	}
	c.ScrollBehind(10)
	if c.Index() != 0 {
		t.Errorf("clipped scroll behind = %d, want 0", c.Index())
	}
}

func TestCursorEmptyCollection(t *testing.T) {
	var c CursorState

	c.Incr(true)
	c.Decr(true)
	c.ScrollAhead(8)
	c.ScrollBehind(8)
	c.End()
	if c.Index() != 0 {
		t.Errorf("empty collection cursor = %d, want 0", c.Index())
	}
}

func TestCursorSetLengthClamps(t *testing.T) {
	var c CursorState
	c.SetLength(10)
	c.SetIndex(9)

	c.SetLength(4)
	if c.Index() != 3 {
		t.Errorf("index after shrink = %d, want 3", c.Index())
	}
	c.SetLength(0)
	if c.Index() != 0 {
		t.Errorf("index after empty = %d, want 0", c.Index())
	}
}

func TestCursorGoTo(t *testing.T) {
	var c CursorState
	c.SetLength(5)
	c.End()
	if c.Index() != 4 {
		t.Errorf("End = %d, want 4", c.Index())
	}
	c.Begin()
	if c.Index() != 0 {
		t.Errorf("Begin = %d, want 0", c.Index())
	}
}
