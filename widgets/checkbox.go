package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// CheckboxStates holds the cursor and the selected indices of a checkbox
// group. Selection order is insertion order.
type CheckboxStates struct {
	choice   int
	choices  int
	selected []int
}

// Choice returns the highlighted index.
func (s *CheckboxStates) Choice() int { return s.choice }

// Selected returns the selected indices in insertion order.
func (s *CheckboxStates) Selected() []int { return s.selected }

// Has reports whether index i is selected.
func (s *CheckboxStates) Has(i int) bool {
	for _, v := range s.selected {
		if v == i {
			return true
		}
	}
	return false
}

// Toggle flips membership of the highlighted choice.
func (s *CheckboxStates) Toggle() {
	i := s.choice
	for n, v := range s.selected {
		if v == i {
			s.selected = append(s.selected[:n], s.selected[n+1:]...)
			return
		}
	}
	s.selected = append(s.selected, i)
}

// NextChoice moves the cursor ahead, wrapping when rewind is set.
func (s *CheckboxStates) NextChoice(rewind bool) {
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
func (s *CheckboxStates) PrevChoice(rewind bool) {
	if s.choices == 0 {
		return
	}
	if s.choice > 0 {
		s.choice--
	} else if rewind {
		s.choice = s.choices - 1
	}
}

// SetChoices updates the choice count, drops selected indices that fell
// out of range, and re-clamps the cursor.
func (s *CheckboxStates) SetChoices(n int) {
	s.choices = n
	kept := s.selected[:0]
	for _, v := range s.selected {
		if v < n {
			kept = append(kept, v)
		}
	}
	s.selected = kept
	if s.choice >= n {
		s.choice = max(0, n-1)
	}
}

// SetSelection replaces the selection outright, keeping in-range indices.
func (s *CheckboxStates) SetSelection(indices []int) {
	s.selected = nil
	for _, v := range indices {
		if v >= 0 && v < s.choices && !s.Has(v) {
			s.selected = append(s.selected, v)
		}
	}
}

// Checkbox is a multi-select choice group laid out on one row.
type Checkbox struct {
	Base
	states CheckboxStates
}

var _ Widget = (*Checkbox)(nil)

// NewCheckbox creates an empty checkbox group with default borders.
func NewCheckbox() *Checkbox {
	return &Checkbox{Base: NewBase()}
}

// WithChoices sets the selectable options.
func (c *Checkbox) WithChoices(choices ...string) *Checkbox {
	vals := make([]props.PropValue, len(choices))
	for i, ch := range choices {
		vals[i] = props.StrProp(ch)
	}
	c.SetAttr(props.Content, props.PayloadValue(props.VecPayload(vals...)))
	return c
}

// WithValues pre-selects the given indices.
func (c *Checkbox) WithValues(indices ...int) *Checkbox {
	vals := make([]props.PropValue, len(indices))
	for i, v := range indices {
		vals[i] = props.IntProp(v)
	}
	c.SetAttr(props.ValueAttr, props.PayloadValue(props.VecPayload(vals...)))
	return c
}

// WithTitle sets the block title.
func (c *Checkbox) WithTitle(title string, align props.TextAlign) *Checkbox {
	c.SetAttr(props.Title, props.TitleValue(title, align))
	return c
}

// WithBorders sets the block borders.
func (c *Checkbox) WithBorders(b props.BorderProps) *Checkbox {
	c.SetAttr(props.Borders, props.BordersValue(b))
	return c
}

// WithForeground sets the text color.
func (c *Checkbox) WithForeground(col backend.Color) *Checkbox {
	c.Common.Foreground = col
	return c
}

// Rewindable makes cursor moves wrap at the ends.
func (c *Checkbox) Rewindable(on bool) *Checkbox {
	c.Common.Rewind = on
	return c
}

func (c *Checkbox) choices() []string {
	v, ok := c.Store.Get(props.Content)
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

// SetAttr stores the attribute. Content resynchronizes the choice count
// preserving still-valid selections; Value replaces the selection.
func (c *Checkbox) SetAttr(attr props.Attr, value props.Value) {
	c.Base.SetAttr(attr, value)
	switch attr {
	case props.Content:
		c.states.SetChoices(len(c.choices()))
	case props.ValueAttr:
		c.states.SetChoices(len(c.choices()))
		vec := value.UnwrapPayload().UnwrapVec()
		indices := make([]int, len(vec))
		for i, p := range vec {
			indices[i] = p.UnwrapInt()
		}
		c.states.SetSelection(indices)
	}
}

// Render draws the options as "[x] name" cells in a row, highlighting the
// cursor option.
func (c *Checkbox) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !c.Common.Visible || area.Empty() {
		return
	}
	inner := c.Frame(buf, area)
	if inner.Empty() {
		return
	}

	base := c.Common.Style()
	highlight := base.Foreground(c.Common.HighlightForeground()).Reverse(c.Common.Focus)

	sub := buf.Sub(inner)
	x := 0
	for i, choice := range c.choices() {
		mark := "[ ] "
		if c.states.Has(i) {
			mark = "[x] "
		}
		style := base
		if i == c.states.Choice() {
			style = highlight
		}
		sub.SetString(x, 0, mark+choice, style)
		x += wrap.Width(mark+choice) + 1
	}
}

// State returns the selected indices in insertion order.
func (c *Checkbox) State() command.State {
	sel := c.states.Selected()
	vals := make([]command.StateValue, len(sel))
	for i, v := range sel {
		vals[i] = command.Int(v)
	}
	return command.Vec(vals...)
}

// Perform moves the cursor with Left/Right, toggles membership, and
// submits the selection. Toggle always reports the new selection.
func (c *Checkbox) Perform(cmd command.Cmd) command.CmdResult {
	switch cc := cmd.(type) {
	case command.Move:
		prev := c.states.Choice()
		switch cc.Direction {
		case command.DirRight:
			c.states.NextChoice(c.Common.Rewind)
		case command.DirLeft:
			c.states.PrevChoice(c.Common.Rewind)
		}
		if c.states.Choice() != prev {
			return command.Changed{State: c.State()}
		}
		return command.ResultNone
	case command.GoTo:
		prev := c.states.Choice()
		if cc.Position == command.Begin {
			c.states.choice = 0
		} else if n := len(c.choices()); n > 0 {
			c.states.choice = n - 1
		}
		if c.states.Choice() != prev {
			return command.Changed{State: c.State()}
		}
		return command.ResultNone
	case command.Toggle:
		c.states.Toggle()
		return command.Changed{State: c.State()}
	case command.Submit:
		return command.Submitted{State: c.State()}
	}
	return command.ResultNone
}
