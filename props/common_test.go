package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/whisker/backend"
)

func TestCommonDefaults(t *testing.T) {
	c := NewCommon()

	assert.Equal(t, backend.ColorDefault, c.Foreground)
	assert.True(t, c.Visible)
	assert.False(t, c.Focus)
	assert.Equal(t, 8, c.ScrollStep)
	assert.Equal(t, BordersAll, c.Borders.Sides)
	assert.False(t, c.HasTitle())
}

func TestCommonApplyRoutesKnownAttrs(t *testing.T) {
	c := NewCommon()

	require.True(t, c.Apply(Foreground, ColorValue(backend.ColorGreen)))
	require.True(t, c.Apply(Title, TitleValue("log", AlignLeft)))
	require.True(t, c.Apply(Display, FlagValue(false)))
	require.True(t, c.Apply(ScrollStep, LengthValue(3)))

	assert.Equal(t, backend.ColorGreen, c.Foreground)
	assert.True(t, c.HasTitle())
	assert.Equal(t, "log", c.Title.Text)
	assert.False(t, c.Visible)
	assert.Equal(t, 3, c.ScrollStep)
}

func TestCommonApplyRejectsCustomAttrs(t *testing.T) {
	c := NewCommon()
	assert.False(t, c.Apply(Custom("chart-x-bounds"), LengthValue(1)))
	assert.False(t, c.Apply(Content, StringValue("rows")))
}

func TestCommonLookup(t *testing.T) {
	c := NewCommon()

	v, ok := c.Lookup(Focus)
	require.True(t, ok)
	assert.False(t, v.UnwrapFlag())

	_, ok = c.Lookup(Title)
	assert.False(t, ok, "title lookup should miss before one is set")

	c.Apply(Title, TitleValue("log", AlignRight))
	v, ok = c.Lookup(Title)
	require.True(t, ok)
	assert.Equal(t, AlignRight, v.UnwrapTitle().Align)
}

func TestCommonHighlightForegroundFallback(t *testing.T) {
	c := NewCommon()
	c.Foreground = backend.ColorYellow
	assert.Equal(t, backend.ColorYellow, c.HighlightForeground())

	c.Apply(HighlightedColor, ColorValue(backend.ColorCyan))
	assert.Equal(t, backend.ColorCyan, c.HighlightForeground())
}

func TestCommonBorderStyleFocusSwap(t *testing.T) {
	c := NewCommon()
	c.Borders = DefaultBorders().WithColor(backend.ColorWhite)

	focus := backend.DefaultStyle().Foreground(backend.ColorYellow).Bold(true)
	c.Apply(FocusStyle, StyleValue(focus))

	assert.Equal(t, backend.ColorWhite, c.BorderStyle().Fg())

	c.Focus = true
	assert.Equal(t, focus, c.BorderStyle())
}
