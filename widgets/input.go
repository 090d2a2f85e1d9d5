package widgets

import (
	"strings"

	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// InputStates holds the text buffer and cursor of an input widget. The
// cursor is a character index into the buffer, 0..len inclusive.
type InputStates struct {
	input  []rune
	cursor int
}

// Value returns the buffer as a string.
func (s *InputStates) Value() string { return string(s.input) }

// Cursor returns the character index of the cursor.
func (s *InputStates) Cursor() int { return s.cursor }

// Append inserts ch at the cursor when the input type accepts it and the
// buffer is below maxLen (0 means unbounded). Reports whether the buffer
// changed.
func (s *InputStates) Append(ch rune, itype props.TypeSpec, maxLen int) bool {
	if maxLen > 0 && len(s.input) >= maxLen {
		return false
	}
	if !itype.CharValid(s.Value(), ch) {
		return false
	}
	s.input = append(s.input[:s.cursor], append([]rune{ch}, s.input[s.cursor:]...)...)
	s.cursor++
	return true
}

// Backspace removes the character before the cursor.
func (s *InputStates) Backspace() bool {
	if s.cursor == 0 {
		return false
	}
	s.input = append(s.input[:s.cursor-1], s.input[s.cursor:]...)
	s.cursor--
	return true
}

// DeleteForward removes the character under the cursor.
func (s *InputStates) DeleteForward() bool {
	if s.cursor >= len(s.input) {
		return false
	}
	s.input = append(s.input[:s.cursor], s.input[s.cursor+1:]...)
	return true
}

// MoveLeft steps the cursor back by one character.
func (s *InputStates) MoveLeft() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveRight steps the cursor ahead by one character.
func (s *InputStates) MoveRight() {
	if s.cursor < len(s.input) {
		s.cursor++
	}
}

// CursorBegin moves the cursor to the start of the buffer.
func (s *InputStates) CursorBegin() { s.cursor = 0 }

// CursorEnd moves the cursor past the last character.
func (s *InputStates) CursorEnd() { s.cursor = len(s.input) }

// SetValue replaces the buffer, dropping characters the input type
// rejects, and moves the cursor to the end.
func (s *InputStates) SetValue(value string, itype props.TypeSpec, maxLen int) {
	s.input = nil
	s.cursor = 0
	for _, ch := range value {
		s.Append(ch, itype, maxLen)
	}
}

// Input is a single-line text field with typed validation. Password
// inputs render masked.
type Input struct {
	Base
	states InputStates
}

var _ Widget = (*Input)(nil)

// NewInput creates an empty text input with default borders.
func NewInput() *Input {
	return &Input{Base: NewBase()}
}

// WithTitle sets the block title.
func (i *Input) WithTitle(title string, align props.TextAlign) *Input {
	i.SetAttr(props.Title, props.TitleValue(title, align))
	return i
}

// WithBorders sets the block borders.
func (i *Input) WithBorders(b props.BorderProps) *Input {
	i.SetAttr(props.Borders, props.BordersValue(b))
	return i
}

// WithForeground sets the text color.
func (i *Input) WithForeground(c backend.Color) *Input {
	i.Common.Foreground = c
	return i
}

// WithType sets the input validation mode.
func (i *Input) WithType(t props.TypeSpec) *Input {
	i.SetAttr(props.InputType, props.InputTypeValue(t))
	return i
}

// WithLength caps the number of characters.
func (i *Input) WithLength(n int) *Input {
	i.SetAttr(props.InputLength, props.LengthValue(n))
	return i
}

// WithValue sets the initial text.
func (i *Input) WithValue(value string) *Input {
	i.SetAttr(props.ValueAttr, props.StringValue(value))
	return i
}

// WithInvalidStyle sets the style used when the value fails validation.
func (i *Input) WithInvalidStyle(s backend.Style) *Input {
	i.SetAttr(props.Style, props.StyleValue(s))
	return i
}

func (i *Input) inputType() props.TypeSpec {
	return i.Store.GetOr(props.InputType, props.InputTypeValue(props.TextInput())).UnwrapInputType()
}

func (i *Input) maxLength() int {
	return i.Store.GetOr(props.InputLength, props.LengthValue(0)).UnwrapLength()
}

// SetAttr stores the attribute. Setting Value replaces the buffer through
// the validation filter.
func (i *Input) SetAttr(attr props.Attr, value props.Value) {
	i.Base.SetAttr(attr, value)
	if attr == props.ValueAttr {
		i.states.SetValue(value.UnwrapString(), i.inputType(), i.maxLength())
	}
}

// Render draws the (possibly masked) value with the cursor column kept in
// view. An invalid value takes the configured invalid style.
func (i *Input) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !i.Common.Visible || area.Empty() {
		return
	}
	inner := i.Frame(buf, area)
	if inner.Empty() {
		return
	}

	style := i.Common.Style()
	itype := i.inputType()
	if !itype.ValueValid(i.states.Value()) {
		if v, ok := i.Store.Get(props.Style); ok {
			style = v.UnwrapStyle()
		}
	}

	display := i.states.Value()
	if itype.Kind == props.InputPassword {
		display = strings.Repeat(string(itype.Mask), len(i.states.input))
	}

	// Scroll horizontally so the cursor column stays visible.
	col := wrap.CursorPosition(i.states.input[:i.states.cursor])
	offset := 0
	if col >= inner.Width {
		offset = col - inner.Width + 1
	}
	buf.Sub(inner).SetString(-offset, 0, display, style)
	if i.Common.Focus {
		buf.Set(inner.X+col-offset, inner.Y, cursorRuneAt(display, i.states.cursor), style.Reverse(true))
	}
}

func cursorRuneAt(s string, idx int) rune {
	runes := []rune(s)
	if idx < len(runes) {
		return runes[idx]
	}
	return ' '
}

// State returns the current text.
func (i *Input) State() command.State {
	return command.One(command.Str(i.states.Value()))
}

// Perform edits the buffer. Cursor motion alone reports nothing; edits
// report the new text and Submit confirms it.
func (i *Input) Perform(cmd command.Cmd) command.CmdResult {
	switch c := cmd.(type) {
	case command.Move:
		switch c.Direction {
		case command.DirLeft:
			i.states.MoveLeft()
		case command.DirRight:
			i.states.MoveRight()
		}
		return command.ResultNone
	case command.GoTo:
		if c.Position == command.Begin {
			i.states.CursorBegin()
		} else {
			i.states.CursorEnd()
		}
		return command.ResultNone
	case command.Type:
		if i.states.Append(c.Ch, i.inputType(), i.maxLength()) {
			return command.Changed{State: i.State()}
		}
		return command.ResultNone
	case command.Delete:
		if i.states.Backspace() {
			return command.Changed{State: i.State()}
		}
		return command.ResultNone
	case command.Cancel:
		if i.states.DeleteForward() {
			return command.Changed{State: i.State()}
		}
		return command.ResultNone
	case command.Submit:
		return command.Submitted{State: i.State()}
	}
	return command.ResultNone
}
