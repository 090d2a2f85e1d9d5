package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
)

// SpinnerStates steps through a glyph sequence, one frame per render.
type SpinnerStates struct {
	sequence []rune
	step     int
}

// Reset replaces the sequence and rewinds to the first frame.
func (s *SpinnerStates) Reset(sequence string) {
	s.sequence = []rune(sequence)
	s.step = 0
}

// Next returns the current frame and advances.
func (s *SpinnerStates) Next() rune {
	if len(s.sequence) == 0 {
		return ' '
	}
	r := s.sequence[s.step]
	s.step = (s.step + 1) % len(s.sequence)
	return r
}

// Spinner is an animated activity indicator. Every Render call draws the
// next frame of its glyph sequence.
type Spinner struct {
	Base
	states SpinnerStates
}

var _ Widget = (*Spinner)(nil)

// NewSpinner creates a spinner with the default braille sequence and no
// borders.
func NewSpinner() *Spinner {
	s := &Spinner{Base: NewBase()}
	s.Common.Borders = props.BorderProps{Sides: props.BordersNone}
	s.SetAttr(props.Text, props.StringValue("⣾⣽⣻⢿⡿⣟⣯⣷"))
	return s
}

// WithSequence sets the animation glyphs.
func (s *Spinner) WithSequence(sequence string) *Spinner {
	s.SetAttr(props.Text, props.StringValue(sequence))
	return s
}

// WithForeground sets the glyph color.
func (s *Spinner) WithForeground(c backend.Color) *Spinner {
	s.Common.Foreground = c
	return s
}

// SetAttr stores the attribute. A new sequence restarts the animation.
func (s *Spinner) SetAttr(attr props.Attr, value props.Value) {
	s.Base.SetAttr(attr, value)
	if attr == props.Text {
		s.states.Reset(value.UnwrapString())
	}
}

// Render draws the next frame in the top-left cell of the area.
func (s *Spinner) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !s.Common.Visible || area.Empty() {
		return
	}
	buf.Set(area.X, area.Y, s.states.Next(), s.Common.Style())
}
