package command

// State is a read-only snapshot of a widget's externally meaningful value.
type State interface {
	isState()
}

type stateNone struct{}

func (stateNone) isState() {}

// NoState is the state of widgets with no externally meaningful value.
var NoState State = stateNone{}

// StateOne carries a single value, e.g. the selected index of a radio
// group or the text of an input.
type StateOne struct {
	Value StateValue
}

func (StateOne) isState() {}

// StateVec carries an ordered collection of values, e.g. the checked
// indices of a checkbox group.
type StateVec struct {
	Values []StateValue
}

func (StateVec) isState() {}

// One wraps a value into a StateOne.
func One(v StateValue) State {
	return StateOne{Value: v}
}

// Vec wraps values into a StateVec.
func Vec(vs ...StateValue) State {
	return StateVec{Values: vs}
}

// ValueKind discriminates StateValue payloads.
type ValueKind int

const (
	ValueBool ValueKind = iota
	ValueInt
	ValueFloat
	ValueString
)

// StateValue is a single typed value inside a State. Exactly the field
// matching Kind is meaningful.
type StateValue struct {
	Kind  ValueKind
	Bool  bool
	Int   int
	Float float64
	Str   string
}

// Int wraps an integer value.
func Int(i int) StateValue { return StateValue{Kind: ValueInt, Int: i} }

// Str wraps a string value.
func Str(s string) StateValue { return StateValue{Kind: ValueString, Str: s} }

// Bool wraps a boolean value.
func Bool(b bool) StateValue { return StateValue{Kind: ValueBool, Bool: b} }

// Float wraps a float value.
func Float(f float64) StateValue { return StateValue{Kind: ValueFloat, Float: f} }
