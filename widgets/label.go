package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// Label is a single-line read-only text widget without borders.
type Label struct {
	Base
}

var _ Widget = (*Label)(nil)

// NewLabel creates an empty label. Labels draw no borders.
func NewLabel() *Label {
	l := &Label{Base: NewBase()}
	l.Common.Borders = props.BorderProps{Sides: props.BordersNone}
	return l
}

// WithText sets the label text.
func (l *Label) WithText(text string) *Label {
	l.SetAttr(props.Text, props.StringValue(text))
	return l
}

// WithForeground sets the text color.
func (l *Label) WithForeground(c backend.Color) *Label {
	l.Common.Foreground = c
	return l
}

// WithBackground sets the background color.
func (l *Label) WithBackground(c backend.Color) *Label {
	l.Common.Background = c
	return l
}

// WithModifiers sets the text modifiers.
func (l *Label) WithModifiers(m backend.AttrMask) *Label {
	l.Common.Modifiers = m
	return l
}

// WithAlignment sets the text alignment.
func (l *Label) WithAlignment(a props.TextAlign) *Label {
	l.SetAttr(props.Alignment, props.AlignValue(a))
	return l
}

// Render draws the label text on the first row of the area.
func (l *Label) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !l.Common.Visible || area.Empty() {
		return
	}
	text := l.Store.GetOr(props.Text, props.StringValue("")).UnwrapString()
	align := l.Store.GetOr(props.Alignment, props.AlignValue(props.AlignLeft)).UnwrapAlignment()
	x := alignedX(area, wrap.Width(text), align)
	buf.Sub(area).SetString(x-area.X, 0, text, l.Common.Style())
}
