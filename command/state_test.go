package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateConstructors(t *testing.T) {
	one, ok := One(Int(3)).(StateOne)
	require.True(t, ok)
	assert.Equal(t, 3, one.Value.Int)

	vec, ok := Vec(Str("a"), Str("b")).(StateVec)
	require.True(t, ok)
	require.Len(t, vec.Values, 2)
	assert.Equal(t, "b", vec.Values[1].Str)
}

func TestStateComparability(t *testing.T) {
	// States travel through CmdResult values and get compared in event
	// handlers, so value semantics matter.
	assert.Equal(t, One(Int(3)), One(Int(3)))
	assert.NotEqual(t, One(Int(3)), One(Int(4)))
	assert.Equal(t, NoState, stateNone{})
	assert.NotEqual(t, NoState, One(Bool(false)))
}

func TestResultShapes(t *testing.T) {
	var res CmdResult = Changed{State: One(Float(0.5))}
	changed, ok := res.(Changed)
	require.True(t, ok)
	assert.Equal(t, 0.5, changed.State.(StateOne).Value.Float)

	res = Submitted{State: Vec(Int(1), Int(2))}
	sub, ok := res.(Submitted)
	require.True(t, ok)
	assert.Len(t, sub.State.(StateVec).Values, 2)

	batch := Batch{Results: []CmdResult{ResultNone, Changed{State: NoState}}}
	assert.Len(t, batch.Results, 2)
}
