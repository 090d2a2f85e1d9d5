package props

import (
	"fmt"

	"github.com/odvcencio/whisker/backend"
)

// ValueKind discriminates Value payloads.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindAlignment
	KindBorders
	KindColor
	KindDatasets
	KindFlag
	KindInputType
	KindLayout
	KindLength
	KindModifiers
	KindPayload
	KindShapes
	KindSpans
	KindString
	KindStyle
	KindTable
	KindTitle
)

// Value is a tagged attribute value. Each attribute key has exactly one
// semantically valid shape; reading a value through the wrong unwrap is a
// programming error and panics.
type Value struct {
	kind      ValueKind
	alignment TextAlign
	borders   BorderProps
	color     backend.Color
	datasets  []DatasetSpec
	flag      bool
	inputType TypeSpec
	layout    LayoutSpec
	length    int
	modifiers backend.AttrMask
	payload   Payload
	shapes    []ShapeSpec
	spans     []TextSpan
	str       string
	style     backend.Style
	table     Table
	title     TitleSpec
}

// Kind returns the value's discriminator.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) expect(k ValueKind) {
	if v.kind != k {
		panic(fmt.Sprintf("props: value has kind %d, read as %d", v.kind, k))
	}
}

// Constructors.

// AlignValue wraps a text alignment.
func AlignValue(a TextAlign) Value { return Value{kind: KindAlignment, alignment: a} }

// BordersValue wraps border properties.
func BordersValue(b BorderProps) Value { return Value{kind: KindBorders, borders: b} }

// ColorValue wraps a color.
func ColorValue(c backend.Color) Value { return Value{kind: KindColor, color: c} }

// DatasetsValue wraps chart datasets.
func DatasetsValue(ds []DatasetSpec) Value { return Value{kind: KindDatasets, datasets: ds} }

// FlagValue wraps a boolean flag.
func FlagValue(f bool) Value { return Value{kind: KindFlag, flag: f} }

// InputTypeValue wraps an input type.
func InputTypeValue(t TypeSpec) Value { return Value{kind: KindInputType, inputType: t} }

// LayoutValue wraps a container layout.
func LayoutValue(l LayoutSpec) Value { return Value{kind: KindLayout, layout: l} }

// LengthValue wraps a non-negative count or size.
func LengthValue(n int) Value { return Value{kind: KindLength, length: n} }

// ModifiersValue wraps text modifiers.
func ModifiersValue(m backend.AttrMask) Value { return Value{kind: KindModifiers, modifiers: m} }

// PayloadValue wraps a composite payload.
func PayloadValue(p Payload) Value { return Value{kind: KindPayload, payload: p} }

// ShapesValue wraps canvas shapes.
func ShapesValue(ss []ShapeSpec) Value { return Value{kind: KindShapes, shapes: ss} }

// SpansValue wraps styled text runs.
func SpansValue(ss []TextSpan) Value { return Value{kind: KindSpans, spans: ss} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// StyleValue wraps a style.
func StyleValue(s backend.Style) Value { return Value{kind: KindStyle, style: s} }

// TableValue wraps a table of styled rows.
func TableValue(t Table) Value { return Value{kind: KindTable, table: t} }

// TitleValue wraps a block title with its alignment.
func TitleValue(text string, a TextAlign) Value {
	return Value{kind: KindTitle, title: TitleSpec{Text: text, Align: a}}
}

// Unwraps. Each panics when the value holds a different shape.

// UnwrapAlignment returns the alignment payload.
func (v Value) UnwrapAlignment() TextAlign { v.expect(KindAlignment); return v.alignment }

// UnwrapBorders returns the borders payload.
func (v Value) UnwrapBorders() BorderProps { v.expect(KindBorders); return v.borders }

// UnwrapColor returns the color payload.
func (v Value) UnwrapColor() backend.Color { v.expect(KindColor); return v.color }

// UnwrapDatasets returns the datasets payload.
func (v Value) UnwrapDatasets() []DatasetSpec { v.expect(KindDatasets); return v.datasets }

// UnwrapFlag returns the flag payload.
func (v Value) UnwrapFlag() bool { v.expect(KindFlag); return v.flag }

// UnwrapInputType returns the input type payload.
func (v Value) UnwrapInputType() TypeSpec { v.expect(KindInputType); return v.inputType }

// UnwrapLayout returns the layout payload.
func (v Value) UnwrapLayout() LayoutSpec { v.expect(KindLayout); return v.layout }

// UnwrapLength returns the length payload.
func (v Value) UnwrapLength() int { v.expect(KindLength); return v.length }

// UnwrapModifiers returns the modifiers payload.
func (v Value) UnwrapModifiers() backend.AttrMask { v.expect(KindModifiers); return v.modifiers }

// UnwrapPayload returns the composite payload.
func (v Value) UnwrapPayload() Payload { v.expect(KindPayload); return v.payload }

// UnwrapShapes returns the shapes payload.
func (v Value) UnwrapShapes() []ShapeSpec { v.expect(KindShapes); return v.shapes }

// UnwrapSpans returns the spans payload.
func (v Value) UnwrapSpans() []TextSpan { v.expect(KindSpans); return v.spans }

// UnwrapString returns the string payload.
func (v Value) UnwrapString() string { v.expect(KindString); return v.str }

// UnwrapStyle returns the style payload.
func (v Value) UnwrapStyle() backend.Style { v.expect(KindStyle); return v.style }

// UnwrapTable returns the table payload.
func (v Value) UnwrapTable() Table { v.expect(KindTable); return v.table }

// UnwrapTitle returns the title payload.
func (v Value) UnwrapTitle() TitleSpec { v.expect(KindTitle); return v.title }
