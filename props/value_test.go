package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/whisker/backend"
)

func TestValueRoundTrips(t *testing.T) {
	assert.Equal(t, backend.ColorRed, ColorValue(backend.ColorRed).UnwrapColor())
	assert.Equal(t, AlignCenter, AlignValue(AlignCenter).UnwrapAlignment())
	assert.True(t, FlagValue(true).UnwrapFlag())
	assert.Equal(t, 42, LengthValue(42).UnwrapLength())
	assert.Equal(t, "hello", StringValue("hello").UnwrapString())
	assert.Equal(t, backend.AttrBold, ModifiersValue(backend.AttrBold).UnwrapModifiers())

	title := TitleValue("status", AlignRight).UnwrapTitle()
	assert.Equal(t, "status", title.Text)
	assert.Equal(t, AlignRight, title.Align)
}

func TestValueWrongKindPanics(t *testing.T) {
	assert.Panics(t, func() { ColorValue(backend.ColorRed).UnwrapFlag() })
	assert.Panics(t, func() { StringValue("x").UnwrapLength() })
	assert.Panics(t, func() { Value{}.UnwrapString() })
}

func TestPayloadValue(t *testing.T) {
	v := PayloadValue(VecPayload(IntProp(1), IntProp(4)))
	vec := v.UnwrapPayload().UnwrapVec()
	require.Len(t, vec, 2)
	assert.Equal(t, 4, vec[1].UnwrapInt())
	assert.Panics(t, func() { v.UnwrapPayload().UnwrapOne() })
}

func TestStoreSetGetDel(t *testing.T) {
	s := NewStore()
	key := Custom("chart-x-bounds")

	_, ok := s.Get(key)
	assert.False(t, ok)

	s.Set(key, LengthValue(10))
	got, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, 10, got.UnwrapLength())
	assert.Equal(t, 1, s.Len())

	assert.Equal(t, 7, s.GetOr(Custom("missing"), LengthValue(7)).UnwrapLength())

	s.Del(key)
	assert.Equal(t, 0, s.Len())
}

func TestTableBuilder(t *testing.T) {
	table := NewTableBuilder().
		AddCol(NewTextSpan("a")).AddCol(NewTextSpan("b")).AddRow().
		AddCol(NewTextSpan("c")).
		Build()

	require.Len(t, table, 2)
	require.Len(t, table[0], 2)
	assert.Equal(t, "b", table[0][1].Content)
	require.Len(t, table[1], 1)
	assert.Equal(t, "c", table[1][0].Content)
}

func TestBorderRunes(t *testing.T) {
	plain := BorderProps{Sides: BordersAll, Type: BorderPlain}.Runes()
	assert.Equal(t, '┌', plain[0])

	rounded := BorderProps{Sides: BordersAll, Type: BorderRounded}.Runes()
	assert.Equal(t, '╭', rounded[0])
	assert.Equal(t, '╯', rounded[3])

	b := BorderProps{Sides: BorderTop | BorderLeft}
	assert.True(t, b.Sides.Has(BorderTop))
	assert.False(t, b.Sides.Has(BorderBottom))
}
