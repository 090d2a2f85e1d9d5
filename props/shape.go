package props

import "github.com/odvcencio/whisker/backend"

// ShapeKind discriminates canvas shapes.
type ShapeKind int

const (
	ShapeLabel ShapeKind = iota
	ShapeLayer
	ShapeLine
	ShapePoints
	ShapeRectangle
	ShapeCircle
)

// ShapeSpec is one drawable figure on a canvas, in data coordinates.
type ShapeSpec struct {
	Kind  ShapeKind
	Color backend.Color

	// Label
	X, Y float64
	Text string

	// Line
	X1, Y1, X2, Y2 float64

	// Points
	Coords [][2]float64

	// Rectangle / Circle
	W, H   float64
	Radius float64
}

// Label places text at (x, y).
func Label(x, y float64, text string, c backend.Color) ShapeSpec {
	return ShapeSpec{Kind: ShapeLabel, X: x, Y: y, Text: text, Color: c}
}

// Layer starts a new drawing layer.
func Layer() ShapeSpec {
	return ShapeSpec{Kind: ShapeLayer}
}

// Line draws a segment between two points.
func Line(x1, y1, x2, y2 float64, c backend.Color) ShapeSpec {
	return ShapeSpec{Kind: ShapeLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c}
}

// Points draws individual dots.
func Points(coords [][2]float64, c backend.Color) ShapeSpec {
	return ShapeSpec{Kind: ShapePoints, Coords: coords, Color: c}
}

// Rectangle draws an axis-aligned rectangle outline with origin (x, y).
func Rectangle(x, y, w, h float64, c backend.Color) ShapeSpec {
	return ShapeSpec{Kind: ShapeRectangle, X: x, Y: y, W: w, H: h, Color: c}
}

// Circle draws a circle outline centered at (x, y).
func Circle(x, y, radius float64, c backend.Color) ShapeSpec {
	return ShapeSpec{Kind: ShapeCircle, X: x, Y: y, Radius: radius, Color: c}
}

// DatasetSpec is one named series on a chart.
type DatasetSpec struct {
	Name   string
	Style  backend.Style
	Points [][2]float64
	Graph  GraphType
}

// GraphType selects how a dataset is plotted.
type GraphType int

const (
	GraphScatter GraphType = iota
	GraphLine
)

// NewDataset creates an empty series.
func NewDataset(name string) DatasetSpec {
	return DatasetSpec{Name: name, Style: backend.DefaultStyle()}
}

// WithStyle sets the plot style.
func (d DatasetSpec) WithStyle(s backend.Style) DatasetSpec {
	d.Style = s
	return d
}

// WithGraph sets the plot type.
func (d DatasetSpec) WithGraph(g GraphType) DatasetSpec {
	d.Graph = g
	return d
}

// Push appends a point.
func (d DatasetSpec) Push(x, y float64) DatasetSpec {
	d.Points = append(d.Points, [2]float64{x, y})
	return d
}
