package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// Textarea is a scrollable read-only multi-line text widget. The cursor
// selects the first visible row; it has no externally meaningful value.
type Textarea struct {
	Base
	states CursorState
}

var _ Widget = (*Textarea)(nil)

// NewTextarea creates an empty textarea with default borders.
func NewTextarea() *Textarea {
	return &Textarea{Base: NewBase()}
}

// WithText sets the rows, one run per row.
func (t *Textarea) WithText(rows ...props.TextSpan) *Textarea {
	t.SetAttr(props.Text, props.SpansValue(rows))
	return t
}

// WithTitle sets the block title.
func (t *Textarea) WithTitle(title string, align props.TextAlign) *Textarea {
	t.SetAttr(props.Title, props.TitleValue(title, align))
	return t
}

// WithBorders sets the block borders.
func (t *Textarea) WithBorders(b props.BorderProps) *Textarea {
	t.SetAttr(props.Borders, props.BordersValue(b))
	return t
}

// WithForeground sets the text color.
func (t *Textarea) WithForeground(c backend.Color) *Textarea {
	t.Common.Foreground = c
	return t
}

// WithStep sets the scroll step.
func (t *Textarea) WithStep(step int) *Textarea {
	t.Common.ScrollStep = step
	return t
}

// SetAttr stores the attribute and resynchronizes the cursor with the
// row count.
func (t *Textarea) SetAttr(attr props.Attr, value props.Value) {
	t.Base.SetAttr(attr, value)
	rows := t.Store.GetOr(props.Text, props.SpansValue(nil)).UnwrapSpans()
	t.states.SetLength(len(rows))
}

// Render draws the rows starting from the cursor row, wrapping each row
// into the content width.
func (t *Textarea) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !t.Common.Visible || area.Empty() {
		return
	}
	inner := t.Frame(buf, area)
	if inner.Empty() {
		return
	}
	rows := t.Store.GetOr(props.Text, props.SpansValue(nil)).UnwrapSpans()

	sub := buf.Sub(inner)
	y := 0
	for i := t.states.Index(); i < len(rows) && y < inner.Height; i++ {
		for _, line := range wrap.Spans(rows[i:i+1], inner.Width, &t.Common) {
			if y >= inner.Height {
				break
			}
			x := 0
			for _, frag := range line {
				sub.SetString(x, y, frag.Content, frag.Style)
				x += wrap.Width(frag.Content)
			}
			y++
		}
	}
}

// Perform scrolls the view. Moves report the new first visible row;
// there is no submittable value.
func (t *Textarea) Perform(cmd command.Cmd) command.CmdResult {
	prev := t.states.Index()
	switch c := cmd.(type) {
	case command.Move:
		switch c.Direction {
		case command.DirDown:
			t.states.Incr(t.Common.Rewind)
		case command.DirUp:
			t.states.Decr(t.Common.Rewind)
		}
	case command.Scroll:
		switch c.Direction {
		case command.DirDown:
			t.states.ScrollAhead(t.Common.ScrollStep)
		case command.DirUp:
			t.states.ScrollBehind(t.Common.ScrollStep)
		}
	case command.GoTo:
		if c.Position == command.Begin {
			t.states.Begin()
		} else {
			t.states.End()
		}
	default:
		return command.ResultNone
	}
	if t.states.Index() != prev {
		return command.Changed{State: command.One(command.Int(t.states.Index()))}
	}
	return command.ResultNone
}
