package props

import "fmt"

// PayloadKind discriminates composite payload shapes.
type PayloadKind int

const (
	PayloadOne PayloadKind = iota
	PayloadPair
	PayloadVec
	PayloadMap
	PayloadLinked
)

// Payload is a composite attribute payload: a single value, a pair, an
// ordered list, a string-keyed map, or a linked list of payloads.
type Payload struct {
	Kind   PayloadKind
	One    PropValue
	Pair   [2]PropValue
	Vec    []PropValue
	Map    map[string]PropValue
	Linked []Payload
}

// OnePayload wraps a single value.
func OnePayload(v PropValue) Payload {
	return Payload{Kind: PayloadOne, One: v}
}

// PairPayload wraps two values.
func PairPayload(a, b PropValue) Payload {
	return Payload{Kind: PayloadPair, Pair: [2]PropValue{a, b}}
}

// VecPayload wraps an ordered list of values.
func VecPayload(vs ...PropValue) Payload {
	return Payload{Kind: PayloadVec, Vec: vs}
}

// MapPayload wraps a string-keyed map of values.
func MapPayload(m map[string]PropValue) Payload {
	return Payload{Kind: PayloadMap, Map: m}
}

// LinkedPayload chains payloads.
func LinkedPayload(ps ...Payload) Payload {
	return Payload{Kind: PayloadLinked, Linked: ps}
}

func (p Payload) expect(k PayloadKind) {
	if p.Kind != k {
		panic(fmt.Sprintf("props: payload has kind %d, read as %d", p.Kind, k))
	}
}

// UnwrapOne returns the single value.
func (p Payload) UnwrapOne() PropValue { p.expect(PayloadOne); return p.One }

// UnwrapPair returns the pair.
func (p Payload) UnwrapPair() (PropValue, PropValue) {
	p.expect(PayloadPair)
	return p.Pair[0], p.Pair[1]
}

// UnwrapVec returns the list.
func (p Payload) UnwrapVec() []PropValue { p.expect(PayloadVec); return p.Vec }

// UnwrapMap returns the map.
func (p Payload) UnwrapMap() map[string]PropValue { p.expect(PayloadMap); return p.Map }

// PropValueKind discriminates PropValue payloads.
type PropValueKind int

const (
	PropBool PropValueKind = iota
	PropInt
	PropU64
	PropF64
	PropStr
)

// PropValue is a single scalar inside a Payload.
type PropValue struct {
	Kind PropValueKind
	Bool bool
	Int  int
	U64  uint64
	F64  float64
	Str  string
}

// BoolProp wraps a bool.
func BoolProp(b bool) PropValue { return PropValue{Kind: PropBool, Bool: b} }

// IntProp wraps an int.
func IntProp(i int) PropValue { return PropValue{Kind: PropInt, Int: i} }

// U64Prop wraps a uint64.
func U64Prop(u uint64) PropValue { return PropValue{Kind: PropU64, U64: u} }

// F64Prop wraps a float64.
func F64Prop(f float64) PropValue { return PropValue{Kind: PropF64, F64: f} }

// StrProp wraps a string.
func StrProp(s string) PropValue { return PropValue{Kind: PropStr, Str: s} }

func (v PropValue) expectProp(k PropValueKind) {
	if v.Kind != k {
		panic(fmt.Sprintf("props: prop value has kind %d, read as %d", v.Kind, k))
	}
}

// UnwrapBool returns the bool payload.
func (v PropValue) UnwrapBool() bool { v.expectProp(PropBool); return v.Bool }

// UnwrapInt returns the int payload.
func (v PropValue) UnwrapInt() int { v.expectProp(PropInt); return v.Int }

// UnwrapU64 returns the uint64 payload.
func (v PropValue) UnwrapU64() uint64 { v.expectProp(PropU64); return v.U64 }

// UnwrapF64 returns the float64 payload.
func (v PropValue) UnwrapF64() float64 { v.expectProp(PropF64); return v.F64 }

// UnwrapStr returns the string payload.
func (v PropValue) UnwrapStr() string { v.expectProp(PropStr); return v.Str }
