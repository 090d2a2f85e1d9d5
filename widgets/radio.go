package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// ChoiceStates holds the cursor of a single-choice group.
type ChoiceStates struct {
	choice  int
	choices int
}

// Choice returns the highlighted index.
func (s *ChoiceStates) Choice() int { return s.choice }

// NextChoice moves the cursor ahead, wrapping when rewind is set.
func (s *ChoiceStates) NextChoice(rewind bool) {
	if s.choices == 0 {
		return
	}
	if s.choice+1 < s.choices {
		s.choice++
	} else if rewind {
		s.choice = 0
	}
}

// PrevChoice moves the cursor back, wrapping when rewind is set.
func (s *ChoiceStates) PrevChoice(rewind bool) {
	if s.choices == 0 {
		return
	}
	if s.choice > 0 {
		s.choice--
	} else if rewind {
		s.choice = s.choices - 1
	}
}

// SetChoices updates the choice count and re-clamps the cursor.
func (s *ChoiceStates) SetChoices(n int) {
	s.choices = n
	if s.choice >= n {
		s.choice = max(0, n-1)
	}
}

// SetChoice moves the cursor to i, clamped to the bounds.
func (s *ChoiceStates) SetChoice(i int) {
	if i < 0 || s.choices == 0 {
		s.choice = 0
		return
	}
	s.choice = min(i, s.choices-1)
}

// Radio is a single-select choice group laid out on one row. Its state is
// always the highlighted index.
type Radio struct {
	Base
	states ChoiceStates
}

var _ Widget = (*Radio)(nil)

// NewRadio creates an empty radio group with default borders.
func NewRadio() *Radio {
	return &Radio{Base: NewBase()}
}

// WithChoices sets the selectable options.
func (r *Radio) WithChoices(choices ...string) *Radio {
	vals := make([]props.PropValue, len(choices))
	for i, ch := range choices {
		vals[i] = props.StrProp(ch)
	}
	r.SetAttr(props.Content, props.PayloadValue(props.VecPayload(vals...)))
	return r
}

// WithValue pre-selects an index.
func (r *Radio) WithValue(index int) *Radio {
	r.SetAttr(props.ValueAttr, props.PayloadValue(props.OnePayload(props.IntProp(index))))
	return r
}

// WithTitle sets the block title.
func (r *Radio) WithTitle(title string, align props.TextAlign) *Radio {
	r.SetAttr(props.Title, props.TitleValue(title, align))
	return r
}

// WithBorders sets the block borders.
func (r *Radio) WithBorders(b props.BorderProps) *Radio {
	r.SetAttr(props.Borders, props.BordersValue(b))
	return r
}

// WithForeground sets the text color.
func (r *Radio) WithForeground(c backend.Color) *Radio {
	r.Common.Foreground = c
	return r
}

// Rewindable makes cursor moves wrap at the ends.
func (r *Radio) Rewindable(on bool) *Radio {
	r.Common.Rewind = on
	return r
}

func (r *Radio) choices() []string {
	v, ok := r.Store.Get(props.Content)
	if !ok {
		return nil
	}
	vec := v.UnwrapPayload().UnwrapVec()
	out := make([]string, len(vec))
	for i, p := range vec {
		out[i] = p.UnwrapStr()
	}
	return out
}

// SetAttr stores the attribute. Content resynchronizes the choice count;
// Value moves the cursor.
func (r *Radio) SetAttr(attr props.Attr, value props.Value) {
	r.Base.SetAttr(attr, value)
	switch attr {
	case props.Content:
		r.states.SetChoices(len(r.choices()))
	case props.ValueAttr:
		r.states.SetChoices(len(r.choices()))
		r.states.SetChoice(value.UnwrapPayload().UnwrapOne().UnwrapInt())
	}
}

// Render draws the options as "( ) name" cells in a row, marking the
// highlighted one.
func (r *Radio) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !r.Common.Visible || area.Empty() {
		return
	}
	inner := r.Frame(buf, area)
	if inner.Empty() {
		return
	}

	base := r.Common.Style()
	highlight := base.Foreground(r.Common.HighlightForeground()).Reverse(r.Common.Focus)

	sub := buf.Sub(inner)
	x := 0
	for i, choice := range r.choices() {
		mark := "( ) "
		style := base
		if i == r.states.Choice() {
			mark = "(*) "
			style = highlight
		}
		sub.SetString(x, 0, mark+choice, style)
		x += wrap.Width(mark+choice) + 1
	}
}

// State returns the highlighted index.
func (r *Radio) State() command.State {
	return command.One(command.Int(r.states.Choice()))
}

// Perform moves the cursor with Left/Right and submits the highlighted
// index. Moves that leave the cursor in place report nothing.
func (r *Radio) Perform(cmd command.Cmd) command.CmdResult {
	switch c := cmd.(type) {
	case command.Move:
		prev := r.states.Choice()
		switch c.Direction {
		case command.DirRight:
			r.states.NextChoice(r.Common.Rewind)
		case command.DirLeft:
			r.states.PrevChoice(r.Common.Rewind)
		}
		if r.states.Choice() != prev {
			return command.Changed{State: r.State()}
		}
		return command.ResultNone
	case command.GoTo:
		prev := r.states.Choice()
		if c.Position == command.Begin {
			r.states.SetChoice(0)
		} else if n := len(r.choices()); n > 0 {
			r.states.SetChoice(n - 1)
		}
		if r.states.Choice() != prev {
			return command.Changed{State: r.State()}
		}
		return command.ResultNone
	case command.Submit:
		return command.Submitted{State: r.State()}
	}
	return command.ResultNone
}
