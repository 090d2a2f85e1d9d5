package widgets

import (
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// Chart widget-specific attribute keys.
var (
	chartXBounds = props.Custom("chart-x-bounds")
	chartYBounds = props.Custom("chart-y-bounds")
	chartXLabels = props.Custom("chart-x-labels")
	chartYLabels = props.Custom("chart-y-labels")
	chartXTitle  = props.Custom("chart-x-title")
	chartYTitle  = props.Custom("chart-y-title")
)

// Chart plots datasets of (x, y) points on a braille canvas between
// configurable axis bounds. In active mode the arrow keys pan the x
// window across the data; disabled charts ignore commands.
type Chart struct {
	Base
	cursor int
}

var _ Widget = (*Chart)(nil)

// NewChart creates an empty chart with default borders.
func NewChart() *Chart {
	return &Chart{Base: NewBase()}
}

// WithDatasets sets the plotted datasets.
func (c *Chart) WithDatasets(ds ...props.DatasetSpec) *Chart {
	c.SetAttr(props.Dataset, props.DatasetsValue(ds))
	return c
}

// WithXBounds sets the x axis range.
func (c *Chart) WithXBounds(lo, hi float64) *Chart {
	c.SetAttr(chartXBounds, props.PayloadValue(props.PairPayload(props.F64Prop(lo), props.F64Prop(hi))))
	return c
}

// WithYBounds sets the y axis range.
func (c *Chart) WithYBounds(lo, hi float64) *Chart {
	c.SetAttr(chartYBounds, props.PayloadValue(props.PairPayload(props.F64Prop(lo), props.F64Prop(hi))))
	return c
}

// WithXLabels sets the labels drawn along the x axis.
func (c *Chart) WithXLabels(labels ...string) *Chart {
	c.SetAttr(chartXLabels, props.PayloadValue(strVec(labels)))
	return c
}

// WithYLabels sets the labels drawn along the y axis.
func (c *Chart) WithYLabels(labels ...string) *Chart {
	c.SetAttr(chartYLabels, props.PayloadValue(strVec(labels)))
	return c
}

// WithXTitle sets the x axis title.
func (c *Chart) WithXTitle(title string) *Chart {
	c.SetAttr(chartXTitle, props.StringValue(title))
	return c
}

// WithYTitle sets the y axis title.
func (c *Chart) WithYTitle(title string) *Chart {
	c.SetAttr(chartYTitle, props.StringValue(title))
	return c
}

// WithTitle sets the block title.
func (c *Chart) WithTitle(title string, align props.TextAlign) *Chart {
	c.SetAttr(props.Title, props.TitleValue(title, align))
	return c
}

// WithBorders sets the block borders.
func (c *Chart) WithBorders(b props.BorderProps) *Chart {
	c.SetAttr(props.Borders, props.BordersValue(b))
	return c
}

// Disabled makes the chart read-only.
func (c *Chart) Disabled(on bool) *Chart {
	c.SetAttr(props.Scroll, props.FlagValue(!on))
	return c
}

func strVec(ss []string) props.Payload {
	vals := make([]props.PropValue, len(ss))
	for i, s := range ss {
		vals[i] = props.StrProp(s)
	}
	return props.VecPayload(vals...)
}

func (c *Chart) active() bool {
	return c.Store.GetOr(props.Scroll, props.FlagValue(true)).UnwrapFlag()
}

func (c *Chart) datasets() []props.DatasetSpec {
	v, ok := c.Store.Get(props.Dataset)
	if !ok {
		return nil
	}
	return v.UnwrapDatasets()
}

func (c *Chart) bounds(attr props.Attr, defLo, defHi float64) (float64, float64) {
	v, ok := c.Store.Get(attr)
	if !ok {
		return defLo, defHi
	}
	lo, hi := v.UnwrapPayload().UnwrapPair()
	return lo.UnwrapF64(), hi.UnwrapF64()
}

func (c *Chart) labels(attr props.Attr) []string {
	v, ok := c.Store.Get(attr)
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

// maxPoints returns the longest dataset length, bounding the pan cursor.
func (c *Chart) maxPoints() int {
	n := 0
	for _, ds := range c.datasets() {
		n = max(n, len(ds.Points))
	}
	return n
}

// Render draws the axes with their labels and titles, then plots each
// dataset into a braille grid scaled to the bounds. The pan cursor shifts
// the x window by whole points.
func (c *Chart) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !c.Common.Visible || area.Empty() {
		return
	}
	inner := c.Frame(buf, area)
	if inner.Width < 4 || inner.Height < 3 {
		return
	}

	style := c.Common.Style()
	sub := buf.Sub(inner)

	yLabels := c.labels(chartYLabels)
	labelWidth := 0
	for _, l := range yLabels {
		labelWidth = max(labelWidth, wrap.Width(l))
	}

	plotX := labelWidth + 1
	plotW := inner.Width - plotX
	plotH := inner.Height - 1
	if plotW < 1 || plotH < 1 {
		return
	}

	// Axes.
	for y := 0; y < plotH; y++ {
		sub.Set(plotX-1, y, '│', style)
	}
	sub.Set(plotX-1, plotH, '└', style)
	for x := plotX; x < inner.Width; x++ {
		sub.Set(x, plotH, '─', style)
	}

	// Axis labels.
	for i, l := range yLabels {
		y := plotH - 1 - i*plotH/max(1, len(yLabels))
		sub.SetString(labelWidth-wrap.Width(l), y, l, style)
	}
	xLabels := c.labels(chartXLabels)
	for i, l := range xLabels {
		x := plotX + i*plotW/max(1, len(xLabels))
		sub.SetString(x, plotH, l, style)
	}
	if t := c.Store.GetOr(chartYTitle, props.StringValue("")).UnwrapString(); t != "" {
		sub.SetString(0, 0, t, style)
	}
	if t := c.Store.GetOr(chartXTitle, props.StringValue("")).UnwrapString(); t != "" {
		sub.SetString(inner.Width-wrap.Width(t), plotH, t, style)
	}

	xLo, xHi := c.bounds(chartXBounds, 0, 1)
	yLo, yHi := c.bounds(chartYBounds, 0, 1)
	if xHi <= xLo || yHi <= yLo {
		return
	}

	grid := newBrailleGrid(plotW, plotH)
	for _, ds := range c.datasets() {
		points := ds.Points
		if c.cursor < len(points) {
			points = points[c.cursor:]
		}
		prevX, prevY := -1, -1
		for _, pt := range points {
			if pt[0] < xLo || pt[0] > xHi || pt[1] < yLo || pt[1] > yHi {
				prevX, prevY = -1, -1
				continue
			}
			dx := int((pt[0] - xLo) / (xHi - xLo) * float64(grid.DotWidth()-1))
			dy := grid.DotHeight() - 1 - int((pt[1]-yLo)/(yHi-yLo)*float64(grid.DotHeight()-1))
			if ds.Graph == props.GraphLine && prevX >= 0 {
				grid.Line(prevX, prevY, dx, dy, ds.Style.Fg())
			} else {
				grid.Plot(dx, dy, ds.Style.Fg())
			}
			prevX, prevY = dx, dy
		}
	}
	grid.Flush(buf.Sub(runtime.Rect{X: inner.X + plotX, Y: inner.Y, Width: plotW, Height: plotH}), c.Common.Background)
}

// Perform pans the x window in active mode. Panning reports nothing.
func (c *Chart) Perform(cmd command.Cmd) command.CmdResult {
	if !c.active() {
		return command.ResultNone
	}
	switch cc := cmd.(type) {
	case command.Move:
		switch cc.Direction {
		case command.DirLeft:
			if c.cursor > 0 {
				c.cursor--
			}
		case command.DirRight:
			if n := c.maxPoints(); n > 0 && c.cursor+1 < n {
				c.cursor++
			}
		}
	case command.GoTo:
		if cc.Position == command.Begin {
			c.cursor = 0
		} else if n := c.maxPoints(); n > 0 {
			c.cursor = n - 1
		}
	}
	return command.ResultNone
}
