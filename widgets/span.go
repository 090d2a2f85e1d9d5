package widgets

import (
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// Span is a single-line sequence of styled runs without borders.
type Span struct {
	Base
}

var _ Widget = (*Span)(nil)

// NewSpan creates an empty span line.
func NewSpan() *Span {
	s := &Span{Base: NewBase()}
	s.Common.Borders = props.BorderProps{Sides: props.BordersNone}
	return s
}

// WithSpans sets the styled runs.
func (s *Span) WithSpans(spans ...props.TextSpan) *Span {
	s.SetAttr(props.Text, props.SpansValue(spans))
	return s
}

// WithAlignment sets the line alignment.
func (s *Span) WithAlignment(a props.TextAlign) *Span {
	s.SetAttr(props.Alignment, props.AlignValue(a))
	return s
}

// Render draws the runs side by side on the first row of the area.
func (s *Span) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !s.Common.Visible || area.Empty() {
		return
	}
	spans := s.Store.GetOr(props.Text, props.SpansValue(nil)).UnwrapSpans()
	align := s.Store.GetOr(props.Alignment, props.AlignValue(props.AlignLeft)).UnwrapAlignment()

	total := 0
	for _, sp := range spans {
		total += wrap.Width(sp.Content)
	}
	x := alignedX(area, total, align)
	sub := buf.Sub(area)
	px := x - area.X
	for _, sp := range spans {
		style := wrap.ResolveStyle(sp, &s.Common)
		sub.SetString(px, 0, sp.Content, style)
		px += wrap.Width(sp.Content)
	}
}
