package runtime

import (
	"testing"

	"github.com/odvcencio/whisker/backend"
)

func TestBufferSetGet(t *testing.T) {
	b := NewBuffer(10, 5)

	style := backend.DefaultStyle().Foreground(backend.ColorRed)
	b.Set(3, 2, 'x', style)

	cell := b.Get(3, 2)
	if cell.Rune != 'x' {
		t.Errorf("Get(3,2).Rune = %q, want 'x'", cell.Rune)
	}
	if cell.Style != style {
		t.Errorf("Get(3,2).Style = %v, want %v", cell.Style, style)
	}
}

func TestBufferSetOutOfBounds(t *testing.T) {
	b := NewBuffer(4, 4)

	// None of these should panic or write anything.
	b.Set(-1, 0, 'a', backend.DefaultStyle())
	b.Set(0, -1, 'a', backend.DefaultStyle())
	b.Set(4, 0, 'a', backend.DefaultStyle())
	b.Set(0, 4, 'a', backend.DefaultStyle())

	if b.IsDirty() {
		t.Error("out-of-bounds writes marked cells dirty")
	}
}

func TestBufferSetString(t *testing.T) {
	b := NewBuffer(10, 2)
	b.SetString(1, 0, "hello", backend.DefaultStyle())

	want := "hello"
	for i, r := range want {
		if got := b.Get(1+i, 0).Rune; got != r {
			t.Errorf("cell %d = %q, want %q", i, got, r)
		}
	}
}

func TestBufferSetStringClips(t *testing.T) {
	b := NewBuffer(4, 1)
	b.SetString(2, 0, "abcdef", backend.DefaultStyle())

	if got := b.Get(2, 0).Rune; got != 'a' {
		t.Errorf("cell (2,0) = %q, want 'a'", got)
	}
	if got := b.Get(3, 0).Rune; got != 'b' {
		t.Errorf("cell (3,0) = %q, want 'b'", got)
	}
}

func TestBufferSetStringWideRunes(t *testing.T) {
	b := NewBuffer(10, 1)
	end := b.SetString(0, 0, "世界", backend.DefaultStyle())

	if end != 4 {
		t.Errorf("end position = %d, want 4", end)
	}
	if got := b.Get(0, 0).Rune; got != '世' {
		t.Errorf("cell (0,0) = %q, want '世'", got)
	}
	if got := b.Get(1, 0).Rune; got != 0 {
		t.Errorf("shadow cell (1,0) = %q, want NUL", got)
	}
	if got := b.Get(2, 0).Rune; got != '界' {
		t.Errorf("cell (2,0) = %q, want '界'", got)
	}
}

func TestBufferFill(t *testing.T) {
	b := NewBuffer(6, 6)
	style := backend.DefaultStyle().Background(backend.ColorBlue)
	b.Fill(Rect{1, 1, 3, 2}, '#', style)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			got := b.Get(x, y).Rune
			if inside && got != '#' {
				t.Errorf("cell (%d,%d) = %q, want '#'", x, y, got)
			}
			if !inside && got == '#' {
				t.Errorf("cell (%d,%d) filled outside region", x, y)
			}
		}
	}
}

func TestBufferResizePreservesContent(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Set(1, 1, 'z', backend.DefaultStyle())

	b.Resize(8, 8)
	if got := b.Get(1, 1).Rune; got != 'z' {
		t.Errorf("cell (1,1) after grow = %q, want 'z'", got)
	}

	b.Resize(2, 2)
	if got := b.Get(1, 1).Rune; got != 'z' {
		t.Errorf("cell (1,1) after shrink = %q, want 'z'", got)
	}
}

func TestBufferDrawBox(t *testing.T) {
	b := NewBuffer(5, 4)
	b.DrawBox(Rect{0, 0, 5, 4}, PlainBorder, backend.DefaultStyle())

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'}, {4, 0, '┐'}, {0, 3, '└'}, {4, 3, '┘'},
		{2, 0, '─'}, {2, 3, '─'}, {0, 1, '│'}, {4, 2, '│'},
	}
	for _, c := range checks {
		if got := b.Get(c.x, c.y).Rune; got != c.want {
			t.Errorf("cell (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestBufferDrawBorderPartialSides(t *testing.T) {
	b := NewBuffer(5, 4)
	b.DrawBorder(Rect{0, 0, 5, 4}, PlainBorder, true, false, false, true, backend.DefaultStyle())

	if got := b.Get(0, 0).Rune; got != '┌' {
		t.Errorf("corner (0,0) = %q, want '┌' when top and left present", got)
	}
	if got := b.Get(4, 0).Rune; got == '┐' {
		t.Error("corner (4,0) drawn without right side")
	}
	if got := b.Get(2, 3).Rune; got == '─' {
		t.Error("bottom edge drawn without bottom side")
	}
}

func TestBufferDirtyTracking(t *testing.T) {
	b := NewBuffer(10, 10)
	if b.IsDirty() {
		t.Fatal("new buffer should be clean")
	}

	b.Set(2, 3, 'a', backend.DefaultStyle())
	b.Set(5, 6, 'b', backend.DefaultStyle())

	if b.DirtyCount() != 2 {
		t.Errorf("DirtyCount = %d, want 2", b.DirtyCount())
	}
	want := Rect{X: 2, Y: 3, Width: 4, Height: 4}
	if b.DirtyRect() != want {
		t.Errorf("DirtyRect = %+v, want %+v", b.DirtyRect(), want)
	}

	// Rewriting identical content stays clean.
	b.ClearDirty()
	b.Set(2, 3, 'a', backend.DefaultStyle())
	if b.IsDirty() {
		t.Error("identical write marked cell dirty")
	}
}

func TestSubBufferTranslatesAndClips(t *testing.T) {
	b := NewBuffer(10, 10)
	sub := b.Sub(Rect{2, 2, 4, 4})

	sub.Set(0, 0, 'a', backend.DefaultStyle())
	if got := b.Get(2, 2).Rune; got != 'a' {
		t.Errorf("parent cell (2,2) = %q, want 'a'", got)
	}

	sub.Set(4, 0, 'b', backend.DefaultStyle())
	if got := b.Get(6, 2).Rune; got == 'b' {
		t.Error("write past sub-buffer width leaked into parent")
	}
}

type fakeTarget struct {
	cells map[[2]int]rune
}

func (f *fakeTarget) Size() (int, int) { return 80, 24 }
func (f *fakeTarget) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	if f.cells == nil {
		f.cells = map[[2]int]rune{}
	}
	f.cells[[2]int{x, y}] = mainc
}

func TestBufferFlushOnlyDirtyCells(t *testing.T) {
	b := NewBuffer(8, 8)
	b.Set(1, 1, 'x', backend.DefaultStyle())
	b.Set(3, 4, 'y', backend.DefaultStyle())

	var target fakeTarget
	b.Flush(&target)

	if len(target.cells) != 2 {
		t.Fatalf("flushed %d cells, want 2", len(target.cells))
	}
	if target.cells[[2]int{1, 1}] != 'x' || target.cells[[2]int{3, 4}] != 'y' {
		t.Errorf("flushed cells = %v", target.cells)
	}
	if b.IsDirty() {
		t.Error("buffer still dirty after flush")
	}
}
