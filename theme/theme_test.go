package theme

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/whisker/backend"
)

func TestDefaultPalette(t *testing.T) {
	th := Default()

	require.True(t, th.Accent.Fg().IsRGB())
	assert.True(t, th.Highlight.Has(backend.AttrBold))
	assert.Equal(t, th.Accent.Fg(), th.BorderFocus.Fg())
}

func TestAdaptTrueColorKeepsRGB(t *testing.T) {
	th := Default().Adapt(termenv.TrueColor)
	assert.True(t, th.Accent.Fg().IsRGB())
}

func TestAdaptANSIDowngrades(t *testing.T) {
	th := Default().Adapt(termenv.ANSI)

	assert.False(t, th.Accent.Fg().IsRGB())
	assert.GreaterOrEqual(t, int32(th.Accent.Fg()), int32(0))
	assert.Less(t, int32(th.Accent.Fg()), int32(16))

	// Background-only styles keep their default foreground.
	assert.False(t, th.Selection.Bg().IsRGB())
	assert.Equal(t, backend.ColorDefault, th.Selection.Fg())
}

func TestAdaptPreservesAttributes(t *testing.T) {
	th := Default().Adapt(termenv.ANSI256)
	assert.True(t, th.Highlight.Has(backend.AttrBold))
}
