package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
)

// SelectStates is the two-state machine behind the select widget: a
// closed field holding a committed choice, and an open overlay where the
// cursor browses the options. The pre-open cursor is remembered so Cancel
// can roll back.
type SelectStates struct {
	choice         int
	choices        int
	previousCursor int
	open           bool
}

// Choice returns the cursor position.
func (s *SelectStates) Choice() int { return s.choice }

// IsOpen reports whether the overlay is open.
func (s *SelectStates) IsOpen() bool { return s.open }

// Open shows the overlay and snapshots the cursor for rollback.
func (s *SelectStates) Open() {
	s.previousCursor = s.choice
	s.open = true
}

// Close hides the overlay, keeping the cursor.
func (s *SelectStates) Close() {
	s.open = false
}

// CancelOpen hides the overlay and restores the pre-open cursor.
func (s *SelectStates) CancelOpen() {
	s.choice = s.previousCursor
	s.open = false
}

// NextChoice moves the cursor ahead, wrapping when rewind is set.
func (s *SelectStates) NextChoice(rewind bool) {
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
func (s *SelectStates) PrevChoice(rewind bool) {
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
func (s *SelectStates) SetChoices(n int) {
	s.choices = n
	if s.choice >= n {
		s.choice = max(0, n-1)
	}
}

// SetChoice moves the cursor to i, clamped to the bounds.
func (s *SelectStates) SetChoice(i int) {
	if i < 0 || s.choices == 0 {
		s.choice = 0
		return
	}
	s.choice = min(i, s.choices-1)
}

// Select is a dropdown choice field. Closed it shows the committed
// choice; Submit opens the option list, Submit again commits the
// highlighted option, Cancel rolls back to the choice the overlay was
// opened with.
type Select struct {
	Base
	states SelectStates
}

var _ Widget = (*Select)(nil)

// NewSelect creates an empty select with default borders.
func NewSelect() *Select {
	return &Select{Base: NewBase()}
}

// WithChoices sets the selectable options.
func (s *Select) WithChoices(choices ...string) *Select {
	vals := make([]props.PropValue, len(choices))
	for i, ch := range choices {
		vals[i] = props.StrProp(ch)
	}
	s.SetAttr(props.Content, props.PayloadValue(props.VecPayload(vals...)))
	return s
}

// WithValue pre-selects an index.
func (s *Select) WithValue(index int) *Select {
	s.SetAttr(props.ValueAttr, props.PayloadValue(props.OnePayload(props.IntProp(index))))
	return s
}

// WithTitle sets the block title.
func (s *Select) WithTitle(title string, align props.TextAlign) *Select {
	s.SetAttr(props.Title, props.TitleValue(title, align))
	return s
}

// WithBorders sets the block borders.
func (s *Select) WithBorders(b props.BorderProps) *Select {
	s.SetAttr(props.Borders, props.BordersValue(b))
	return s
}

// WithForeground sets the text color.
func (s *Select) WithForeground(c backend.Color) *Select {
	s.Common.Foreground = c
	return s
}

// WithHighlightedColor sets the highlighted option color.
func (s *Select) WithHighlightedColor(c backend.Color) *Select {
	s.SetAttr(props.HighlightedColor, props.ColorValue(c))
	return s
}

// Rewindable makes cursor moves wrap at the ends.
func (s *Select) Rewindable(on bool) *Select {
	s.Common.Rewind = on
	return s
}

func (s *Select) choices() []string {
	v, ok := s.Store.Get(props.Content)
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

// SetAttr stores the attribute. Content resynchronizes the choice count,
// Value moves the cursor, and losing focus closes the overlay without
// rolling the cursor back.
func (s *Select) SetAttr(attr props.Attr, value props.Value) {
	s.Base.SetAttr(attr, value)
	switch attr {
	case props.Content:
		s.states.SetChoices(len(s.choices()))
	case props.ValueAttr:
		s.states.SetChoices(len(s.choices()))
		s.states.SetChoice(value.UnwrapPayload().UnwrapOne().UnwrapInt())
	case props.Focus:
		if !value.UnwrapFlag() {
			s.states.Close()
		}
	}
}

// Render draws the closed field, or the field plus the option list while
// the overlay is open.
func (s *Select) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !s.Common.Visible || area.Empty() {
		return
	}
	inner := s.Frame(buf, area)
	if inner.Empty() {
		return
	}

	choices := s.choices()
	base := s.Common.Style()
	highlight := base.Foreground(s.Common.HighlightForeground()).Reverse(true)

	sub := buf.Sub(inner)
	field := ""
	if s.states.Choice() < len(choices) {
		field = choices[s.states.Choice()]
	}
	sub.SetString(0, 0, field, base)
	if inner.Width >= 2 {
		sub.SetString(inner.Width-2, 0, "▼", base)
	}

	if s.states.IsOpen() {
		for i, choice := range choices {
			y := 1 + i
			if y >= inner.Height {
				break
			}
			style := base
			if i == s.states.Choice() {
				style = highlight
			}
			sub.SetString(0, y, choice, style)
		}
	}
}

// State returns the committed choice while closed and NoState while the
// overlay is open.
func (s *Select) State() command.State {
	if s.states.IsOpen() {
		return command.NoState
	}
	return command.One(command.Int(s.states.Choice()))
}

// Perform drives the open/closed machine. Closed: Submit opens the
// overlay, everything else is ignored. Open: moves browse the options,
// Submit commits, Cancel rolls back to the pre-open choice.
func (s *Select) Perform(cmd command.Cmd) command.CmdResult {
	if !s.states.IsOpen() {
		if _, ok := cmd.(command.Submit); ok {
			s.states.Open()
		}
		return command.ResultNone
	}
	switch c := cmd.(type) {
	case command.Move:
		prev := s.states.Choice()
		switch c.Direction {
		case command.DirDown:
			s.states.NextChoice(s.Common.Rewind)
		case command.DirUp:
			s.states.PrevChoice(s.Common.Rewind)
		}
		if s.states.Choice() != prev {
			return command.Changed{State: command.One(command.Int(s.states.Choice()))}
		}
		return command.ResultNone
	case command.GoTo:
		prev := s.states.Choice()
		if c.Position == command.Begin {
			s.states.SetChoice(0)
		} else if n := len(s.choices()); n > 0 {
			s.states.SetChoice(n - 1)
		}
		if s.states.Choice() != prev {
			return command.Changed{State: command.One(command.Int(s.states.Choice()))}
		}
		return command.ResultNone
	case command.Submit:
		s.states.Close()
		return command.Submitted{State: s.State()}
	case command.Cancel:
		s.states.CancelOpen()
		return command.Changed{State: s.State()}
	}
	return command.ResultNone
}
