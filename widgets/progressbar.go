package widgets

import (
	"fmt"

	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// assertRatio aborts on a progress value outside [0, 1]. Feeding a gauge
// a bad ratio is a programming error, not a runtime condition.
func assertRatio(r float64) {
	if r < 0.0 || r > 1.0 {
		panic(fmt.Sprintf("widgets: progress %v out of range [0.0, 1.0]", r))
	}
}

// ProgressBar is a filled horizontal gauge with a label.
type ProgressBar struct {
	Base
}

var _ Widget = (*ProgressBar)(nil)

// NewProgressBar creates an empty gauge with default borders.
func NewProgressBar() *ProgressBar {
	return &ProgressBar{Base: NewBase()}
}

// WithProgress sets the fill ratio. Panics outside [0, 1].
func (p *ProgressBar) WithProgress(ratio float64) *ProgressBar {
	p.SetAttr(props.ValueAttr, props.PayloadValue(props.OnePayload(props.F64Prop(ratio))))
	return p
}

// WithLabel sets the text drawn over the gauge.
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.SetAttr(props.Text, props.StringValue(label))
	return p
}

// WithTitle sets the block title.
func (p *ProgressBar) WithTitle(title string, align props.TextAlign) *ProgressBar {
	p.SetAttr(props.Title, props.TitleValue(title, align))
	return p
}

// WithBorders sets the block borders.
func (p *ProgressBar) WithBorders(b props.BorderProps) *ProgressBar {
	p.SetAttr(props.Borders, props.BordersValue(b))
	return p
}

// WithProgbarColor sets the fill color.
func (p *ProgressBar) WithProgbarColor(c backend.Color) *ProgressBar {
	p.Common.Foreground = c
	return p
}

// WithBackground sets the empty-track color.
func (p *ProgressBar) WithBackground(c backend.Color) *ProgressBar {
	p.Common.Background = c
	return p
}

// SetAttr stores the attribute, validating the ratio on Value.
func (p *ProgressBar) SetAttr(attr props.Attr, value props.Value) {
	if attr == props.ValueAttr {
		assertRatio(value.UnwrapPayload().UnwrapOne().UnwrapF64())
	}
	p.Base.SetAttr(attr, value)
}

func (p *ProgressBar) ratio() float64 {
	v, ok := p.Store.Get(props.ValueAttr)
	if !ok {
		return 0
	}
	return v.UnwrapPayload().UnwrapOne().UnwrapF64()
}

// Render fills the gauge track proportionally and centers the label over
// it, reversing the label style where it crosses the fill.
func (p *ProgressBar) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !p.Common.Visible || area.Empty() {
		return
	}
	inner := p.Frame(buf, area)
	if inner.Empty() {
		return
	}

	ratio := p.ratio()
	filled := int(float64(inner.Width) * ratio)
	fill := backend.DefaultStyle().Foreground(p.Common.Background).Background(p.Common.Foreground)
	track := p.Common.Style()

	sub := buf.Sub(inner)
	for y := 0; y < inner.Height; y++ {
		for x := 0; x < inner.Width; x++ {
			style := track
			if x < filled {
				style = fill
			}
			sub.Set(x, y, ' ', style)
		}
	}

	label := p.Store.GetOr(props.Text, props.StringValue("")).UnwrapString()
	if label == "" {
		label = fmt.Sprintf("%d%%", int(ratio*100))
	}
	lx := max(0, (inner.Width-wrap.Width(label))/2)
	ly := inner.Height / 2
	px := lx
	for _, r := range label {
		style := track
		if px < filled {
			style = fill
		}
		sub.Set(px, ly, r, style)
		px += wrap.Width(string(r))
	}
}
