package widgets

import (
	"testing"

	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
)

func sevenRows() props.Table {
	b := props.NewTableBuilder()
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		b.AddCol(props.NewTextSpan(s)).AddRow()
	}
	return b.Build()
}

func wantChanged(t *testing.T, res command.CmdResult, index int) {
	t.Helper()
	ch, ok := res.(command.Changed)
	if !ok {
		t.Fatalf("result = %#v, want Changed(%d)", res, index)
	}
	one, ok := ch.State.(command.StateOne)
	if !ok || one.Value.Int != index {
		t.Fatalf("changed state = %#v, want index %d", ch.State, index)
	}
}

func TestListScrollSequence(t *testing.T) {
	l := NewList().
		WithRows(sevenRows()).
		Scrollable(true).
		Rewindable(true).
		WithStep(4)

	l.Perform(command.Move{Direction: command.DirDown}) // 1

	wantChanged(t, l.Perform(command.Move{Direction: command.DirDown}), 2)
	wantChanged(t, l.Perform(command.Move{Direction: command.DirUp}), 1)
	wantChanged(t, l.Perform(command.Scroll{Direction: command.DirDown}), 5)
	wantChanged(t, l.Perform(command.Scroll{Direction: command.DirDown}), 6)

	if res := l.Perform(command.GoTo{Position: command.End}); res != command.ResultNone {
		t.Errorf("GoTo(End) at end = %#v, want none", res)
	}
	wantChanged(t, l.Perform(command.Move{Direction: command.DirDown}), 0)
}

func TestListMoveIdempotentAtBounds(t *testing.T) {
	l := NewList().WithRows(sevenRows()).Scrollable(true)

	if res := l.Perform(command.Move{Direction: command.DirUp}); res != command.ResultNone {
		t.Errorf("Move(Up) at begin = %#v, want none", res)
	}
	l.Perform(command.GoTo{Position: command.End})
	if res := l.Perform(command.Move{Direction: command.DirDown}); res != command.ResultNone {
		t.Errorf("non-rewind Move(Down) at end = %#v, want none", res)
	}
}

func TestListStateScrollable(t *testing.T) {
	l := NewList().WithRows(sevenRows())
	if l.State() != command.NoState {
		t.Errorf("non-scrollable state = %#v, want none", l.State())
	}
	l.Scrollable(true)
	if _, ok := l.State().(command.StateOne); !ok {
		t.Errorf("scrollable state = %#v, want One", l.State())
	}
}

func TestListContentReplaceClampsCursor(t *testing.T) {
	l := NewList().WithRows(sevenRows()).Scrollable(true)
	l.Perform(command.GoTo{Position: command.End})

	b := props.NewTableBuilder()
	b.AddCol(props.NewTextSpan("only"))
	l.SetAttr(props.Content, props.TableValue(b.Build()))

	one := l.State().(command.StateOne)
	if one.Value.Int != 0 {
		t.Errorf("cursor after shrink = %d, want 0", one.Value.Int)
	}
}

func TestListRenderHighlightsCursorRow(t *testing.T) {
	l := NewList().
		WithRows(sevenRows()).
		Scrollable(true).
		WithHighlightedStr("> ").
		WithBorders(props.BorderProps{Sides: props.BordersNone})
	l.Perform(command.Move{Direction: command.DirDown})

	buf := runtime.NewBuffer(10, 7)
	l.Render(buf, buf.Area())

	if got := buf.Get(0, 1).Rune; got != '>' {
		t.Errorf("cell (0,1) = %q, want '>' on cursor row", got)
	}
	if got := buf.Get(2, 1).Rune; got != 'b' {
		t.Errorf("cell (2,1) = %q, want 'b'", got)
	}
	if got := buf.Get(0, 0).Rune; got == '>' {
		t.Error("highlight symbol drawn on non-cursor row")
	}
}

func TestListHiddenRendersNothing(t *testing.T) {
	l := NewList().WithRows(sevenRows())
	l.SetAttr(props.Display, props.FlagValue(false))

	buf := runtime.NewBuffer(10, 7)
	l.Render(buf, buf.Area())
	if buf.IsDirty() {
		t.Error("hidden list wrote cells")
	}
}
