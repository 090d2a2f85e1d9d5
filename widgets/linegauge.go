package widgets

import (
	"fmt"

	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// Line gauge stroke styles.
const (
	LineNormal uint8 = iota
	LineDouble
	LineRound
	LineThick
)

func lineRune(style uint8) rune {
	switch style {
	case LineNormal:
		return '─'
	case LineDouble:
		return '═'
	case LineRound:
		return '─'
	case LineThick:
		return '━'
	default:
		panic(fmt.Sprintf("widgets: unknown line gauge style %d", style))
	}
}

// LineGauge is a single-line progress gauge drawn as a stroked line.
type LineGauge struct {
	Base
}

var _ Widget = (*LineGauge)(nil)

// NewLineGauge creates an empty line gauge with default borders.
func NewLineGauge() *LineGauge {
	return &LineGauge{Base: NewBase()}
}

// WithProgress sets the fill ratio. Panics outside [0, 1].
func (l *LineGauge) WithProgress(ratio float64) *LineGauge {
	l.SetAttr(props.ValueAttr, props.PayloadValue(props.OnePayload(props.F64Prop(ratio))))
	return l
}

// WithLabel sets the text drawn before the line.
func (l *LineGauge) WithLabel(label string) *LineGauge {
	l.SetAttr(props.Text, props.StringValue(label))
	return l
}

// WithStyle sets the stroke style. Panics on an unknown code.
func (l *LineGauge) WithStyle(style uint8) *LineGauge {
	l.SetAttr(props.Shape, props.PayloadValue(props.OnePayload(props.U64Prop(uint64(style)))))
	return l
}

// WithTitle sets the block title.
func (l *LineGauge) WithTitle(title string, align props.TextAlign) *LineGauge {
	l.SetAttr(props.Title, props.TitleValue(title, align))
	return l
}

// WithBorders sets the block borders.
func (l *LineGauge) WithBorders(b props.BorderProps) *LineGauge {
	l.SetAttr(props.Borders, props.BordersValue(b))
	return l
}

// WithProgbarColor sets the stroke color.
func (l *LineGauge) WithProgbarColor(c backend.Color) *LineGauge {
	l.Common.Foreground = c
	return l
}

// SetAttr stores the attribute, validating the ratio on Value and the
// stroke code on Shape.
func (l *LineGauge) SetAttr(attr props.Attr, value props.Value) {
	switch attr {
	case props.ValueAttr:
		assertRatio(value.UnwrapPayload().UnwrapOne().UnwrapF64())
	case props.Shape:
		lineRune(uint8(value.UnwrapPayload().UnwrapOne().UnwrapU64()))
	}
	l.Base.SetAttr(attr, value)
}

func (l *LineGauge) ratio() float64 {
	v, ok := l.Store.Get(props.ValueAttr)
	if !ok {
		return 0
	}
	return v.UnwrapPayload().UnwrapOne().UnwrapF64()
}

func (l *LineGauge) lineStyle() uint8 {
	v, ok := l.Store.Get(props.Shape)
	if !ok {
		return LineNormal
	}
	return uint8(v.UnwrapPayload().UnwrapOne().UnwrapU64())
}

// Render draws the label, then the line: the filled part in the gauge
// color, the rest in the background color.
func (l *LineGauge) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !l.Common.Visible || area.Empty() {
		return
	}
	inner := l.Frame(buf, area)
	if inner.Empty() {
		return
	}

	sub := buf.Sub(inner)
	x := 0
	ratio := l.ratio()
	label := l.Store.GetOr(props.Text, props.StringValue("")).UnwrapString()
	if label == "" {
		label = fmt.Sprintf("%d%%", int(ratio*100))
	}
	sub.SetString(x, 0, label+" ", l.Common.Style())
	x += wrap.Width(label) + 1

	lineWidth := inner.Width - x
	if lineWidth <= 0 {
		return
	}
	filled := int(float64(lineWidth) * ratio)
	ch := lineRune(l.lineStyle())
	fill := backend.DefaultStyle().Foreground(l.Common.Foreground)
	rest := backend.DefaultStyle().Foreground(l.Common.Background)
	for i := 0; i < lineWidth; i++ {
		style := rest
		if i < filled {
			style = fill
		}
		sub.Set(x+i, 0, ch, style)
	}
}
