package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// List is a textual list of rows. When scrollable it carries a cursor
// that the arrow and scroll commands move; otherwise it is read-only.
type List struct {
	Base
	states CursorState
}

var _ Widget = (*List)(nil)

// NewList creates an empty list with default borders.
func NewList() *List {
	return &List{Base: NewBase()}
}

// WithRows sets the list content.
func (l *List) WithRows(rows props.Table) *List {
	l.SetAttr(props.Content, props.TableValue(rows))
	return l
}

// WithTitle sets the block title.
func (l *List) WithTitle(title string, align props.TextAlign) *List {
	l.SetAttr(props.Title, props.TitleValue(title, align))
	return l
}

// WithBorders sets the block borders.
func (l *List) WithBorders(b props.BorderProps) *List {
	l.SetAttr(props.Borders, props.BordersValue(b))
	return l
}

// WithForeground sets the text color.
func (l *List) WithForeground(c backend.Color) *List {
	l.Common.Foreground = c
	return l
}

// WithBackground sets the background color.
func (l *List) WithBackground(c backend.Color) *List {
	l.Common.Background = c
	return l
}

// Scrollable enables the cursor.
func (l *List) Scrollable(on bool) *List {
	l.SetAttr(props.Scroll, props.FlagValue(on))
	return l
}

// Rewindable makes single-step moves wrap at the ends.
func (l *List) Rewindable(on bool) *List {
	l.Common.Rewind = on
	return l
}

// WithStep sets the scroll step.
func (l *List) WithStep(step int) *List {
	l.Common.ScrollStep = step
	return l
}

// WithHighlightedStr sets the symbol drawn before the cursor row.
func (l *List) WithHighlightedStr(s string) *List {
	l.Common.HighlightedStr = s
	l.SetAttr(props.HighlightedStr, props.StringValue(s))
	return l
}

// WithHighlightedColor sets the cursor row color.
func (l *List) WithHighlightedColor(c backend.Color) *List {
	l.SetAttr(props.HighlightedColor, props.ColorValue(c))
	return l
}

func (l *List) scrollable() bool {
	return l.Store.GetOr(props.Scroll, props.FlagValue(false)).UnwrapFlag()
}

func (l *List) rows() props.Table {
	return l.Store.GetOr(props.Content, props.TableValue(nil)).UnwrapTable()
}

// SetAttr stores the attribute and re-clamps the cursor against the row
// count.
func (l *List) SetAttr(attr props.Attr, value props.Value) {
	l.Base.SetAttr(attr, value)
	l.states.SetLength(len(l.rows()))
}

// Render draws the visible window of rows, keeping the cursor row in view
// and highlighting it when the list is scrollable.
func (l *List) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !l.Common.Visible || area.Empty() {
		return
	}
	inner := l.Frame(buf, area)
	if inner.Empty() {
		return
	}
	rows := l.rows()

	start := 0
	if l.scrollable() && l.states.Index() >= inner.Height {
		start = l.states.Index() - inner.Height + 1
	}

	highlight := backend.DefaultStyle().
		Foreground(l.Common.Background).
		Background(l.Common.HighlightForeground()).
		Attrs(l.Common.Modifiers)

	sub := buf.Sub(inner)
	for y := 0; y < inner.Height && start+y < len(rows); y++ {
		idx := start + y
		selected := l.scrollable() && idx == l.states.Index()
		x := 0
		if l.Common.HighlightedStr != "" && l.scrollable() {
			if selected {
				sub.SetString(x, y, l.Common.HighlightedStr, highlight)
			}
			x += wrap.Width(l.Common.HighlightedStr)
		}
		for _, col := range rows[idx] {
			style := wrap.ResolveStyle(col, &l.Common)
			if selected {
				style = highlight
			}
			sub.SetString(x, y, col.Content, style)
			x += wrap.Width(col.Content)
		}
	}
}

// State returns the cursor index when scrollable, NoState otherwise.
func (l *List) State() command.State {
	if l.scrollable() {
		return command.One(command.Int(l.states.Index()))
	}
	return command.NoState
}

// Perform moves the cursor. Results carry the new index; commands that
// leave the cursor in place report nothing.
func (l *List) Perform(cmd command.Cmd) command.CmdResult {
	prev := l.states.Index()
	switch c := cmd.(type) {
	case command.Move:
		switch c.Direction {
		case command.DirDown:
			l.states.Incr(l.Common.Rewind)
		case command.DirUp:
			l.states.Decr(l.Common.Rewind)
		}
	case command.Scroll:
		switch c.Direction {
		case command.DirDown:
			l.states.ScrollAhead(l.Common.ScrollStep)
		case command.DirUp:
			l.states.ScrollBehind(l.Common.ScrollStep)
		}
	case command.GoTo:
		if c.Position == command.Begin {
			l.states.Begin()
		} else {
			l.states.End()
		}
	default:
		return command.ResultNone
	}
	if l.states.Index() != prev {
		return command.Changed{State: command.One(command.Int(l.states.Index()))}
	}
	return command.ResultNone
}
