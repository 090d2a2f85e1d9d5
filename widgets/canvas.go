package widgets

import (
	"math"

	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
)

// Canvas widget-specific attribute keys.
var (
	canvasXBounds = props.Custom("canvas-x-bounds")
	canvasYBounds = props.Custom("canvas-y-bounds")
)

// Canvas draws a list of shapes in data coordinates onto a braille grid.
// It is read-only and has no externally meaningful value.
type Canvas struct {
	Base
}

var _ Widget = (*Canvas)(nil)

// NewCanvas creates an empty canvas with default borders.
func NewCanvas() *Canvas {
	return &Canvas{Base: NewBase()}
}

// WithShapes sets the drawn shapes, in paint order.
func (c *Canvas) WithShapes(shapes ...props.ShapeSpec) *Canvas {
	c.SetAttr(props.Shape, props.ShapesValue(shapes))
	return c
}

// WithXBounds sets the data range mapped to the canvas width.
func (c *Canvas) WithXBounds(lo, hi float64) *Canvas {
	c.SetAttr(canvasXBounds, props.PayloadValue(props.PairPayload(props.F64Prop(lo), props.F64Prop(hi))))
	return c
}

// WithYBounds sets the data range mapped to the canvas height.
func (c *Canvas) WithYBounds(lo, hi float64) *Canvas {
	c.SetAttr(canvasYBounds, props.PayloadValue(props.PairPayload(props.F64Prop(lo), props.F64Prop(hi))))
	return c
}

// WithTitle sets the block title.
func (c *Canvas) WithTitle(title string, align props.TextAlign) *Canvas {
	c.SetAttr(props.Title, props.TitleValue(title, align))
	return c
}

// WithBorders sets the block borders.
func (c *Canvas) WithBorders(b props.BorderProps) *Canvas {
	c.SetAttr(props.Borders, props.BordersValue(b))
	return c
}

func (c *Canvas) bounds(attr props.Attr) (float64, float64) {
	v, ok := c.Store.Get(attr)
	if !ok {
		return 0, 1
	}
	lo, hi := v.UnwrapPayload().UnwrapPair()
	return lo.UnwrapF64(), hi.UnwrapF64()
}

// Render maps each shape from data coordinates into grid dots and paints
// them in order. Labels are drawn as plain text over the grid.
func (c *Canvas) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !c.Common.Visible || area.Empty() {
		return
	}
	inner := c.Frame(buf, area)
	if inner.Empty() {
		return
	}

	xLo, xHi := c.bounds(canvasXBounds)
	yLo, yHi := c.bounds(canvasYBounds)
	if xHi <= xLo || yHi <= yLo {
		return
	}

	grid := newBrailleGrid(inner.Width, inner.Height)
	toDotX := func(x float64) int {
		return int((x - xLo) / (xHi - xLo) * float64(grid.DotWidth()-1))
	}
	toDotY := func(y float64) int {
		return grid.DotHeight() - 1 - int((y-yLo)/(yHi-yLo)*float64(grid.DotHeight()-1))
	}

	sub := buf.Sub(inner)
	var labels []props.ShapeSpec
	for _, shape := range c.shapes() {
		switch shape.Kind {
		case props.ShapeLabel:
			labels = append(labels, shape)
		case props.ShapeLayer:
			// Layers only order paint; the grid accumulates in order
			// already.
		case props.ShapeLine:
			grid.Line(toDotX(shape.X1), toDotY(shape.Y1), toDotX(shape.X2), toDotY(shape.Y2), shape.Color)
		case props.ShapePoints:
			for _, pt := range shape.Coords {
				grid.Plot(toDotX(pt[0]), toDotY(pt[1]), shape.Color)
			}
		case props.ShapeRectangle:
			x0, y0 := toDotX(shape.X), toDotY(shape.Y)
			x1, y1 := toDotX(shape.X+shape.W), toDotY(shape.Y+shape.H)
			grid.Line(x0, y0, x1, y0, shape.Color)
			grid.Line(x1, y0, x1, y1, shape.Color)
			grid.Line(x1, y1, x0, y1, shape.Color)
			grid.Line(x0, y1, x0, y0, shape.Color)
		case props.ShapeCircle:
			steps := max(16, grid.DotWidth())
			for i := 0; i < steps; i++ {
				angle := 2 * math.Pi * float64(i) / float64(steps)
				grid.Plot(
					toDotX(shape.X+shape.Radius*math.Cos(angle)),
					toDotY(shape.Y+shape.Radius*math.Sin(angle)),
					shape.Color,
				)
			}
		}
	}
	grid.Flush(sub, c.Common.Background)

	for _, l := range labels {
		x := toDotX(l.X) / 2
		y := toDotY(l.Y) / 4
		sub.SetString(x, y, l.Text, c.Common.Style().Foreground(l.Color))
	}
}

func (c *Canvas) shapes() []props.ShapeSpec {
	v, ok := c.Store.Get(props.Shape)
	if !ok {
		return nil
	}
	return v.UnwrapShapes()
}
