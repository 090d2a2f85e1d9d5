// Package theme provides a unified visual design system for whisker
// applications. Rich blacks, warm accents, and a semantic palette that
// degrades gracefully on terminals without true color support.
package theme

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/odvcencio/whisker/backend"
)

// Theme defines the visual language shared by an application's widgets.
type Theme struct {
	// Text hierarchy
	TextPrimary   backend.Style
	TextSecondary backend.Style
	TextMuted     backend.Style

	// Accents
	Accent     backend.Style
	AccentDim  backend.Style
	Highlight  backend.Style

	// Semantic colors
	Success backend.Style
	Warning backend.Style
	Error   backend.Style
	Info    backend.Style

	// UI elements
	Border       backend.Style
	BorderFocus  backend.Style
	Selection    backend.Style
	ProgressFill backend.Style
	ChartAxis    backend.Style
	Spinner      backend.Style
}

// Default returns the standard dark palette.
func Default() *Theme {
	return &Theme{
		TextPrimary:   backend.DefaultStyle().Foreground(backend.ColorRGB(240, 238, 232)),
		TextSecondary: backend.DefaultStyle().Foreground(backend.ColorRGB(160, 158, 150)),
		TextMuted:     backend.DefaultStyle().Foreground(backend.ColorRGB(100, 98, 92)),

		Accent:    backend.DefaultStyle().Foreground(backend.ColorRGB(255, 183, 77)),
		AccentDim: backend.DefaultStyle().Foreground(backend.ColorRGB(180, 130, 60)),
		Highlight: backend.DefaultStyle().Foreground(backend.ColorRGB(255, 200, 100)).Bold(true),

		Success: backend.DefaultStyle().Foreground(backend.ColorRGB(134, 239, 172)),
		Warning: backend.DefaultStyle().Foreground(backend.ColorRGB(255, 138, 101)),
		Error:   backend.DefaultStyle().Foreground(backend.ColorRGB(255, 110, 90)),
		Info:    backend.DefaultStyle().Foreground(backend.ColorRGB(77, 182, 172)),

		Border:       backend.DefaultStyle().Foreground(backend.ColorRGB(50, 50, 60)),
		BorderFocus:  backend.DefaultStyle().Foreground(backend.ColorRGB(255, 183, 77)),
		Selection:    backend.DefaultStyle().Background(backend.ColorRGB(60, 60, 80)),
		ProgressFill: backend.DefaultStyle().Foreground(backend.ColorRGB(255, 183, 77)),
		ChartAxis:    backend.DefaultStyle().Foreground(backend.ColorRGB(100, 98, 92)),
		Spinner:      backend.DefaultStyle().Foreground(backend.ColorRGB(255, 183, 77)),
	}
}

// DetectProfile queries the running terminal's color capabilities.
func DetectProfile() termenv.Profile {
	return termenv.ColorProfile()
}

// Adapt returns a copy of the theme with every color squeezed into the
// given profile. True color terminals get the palette untouched; older
// terminals get the nearest ANSI approximation.
func (t *Theme) Adapt(p termenv.Profile) *Theme {
	out := *t
	for _, s := range []*backend.Style{
		&out.TextPrimary, &out.TextSecondary, &out.TextMuted,
		&out.Accent, &out.AccentDim, &out.Highlight,
		&out.Success, &out.Warning, &out.Error, &out.Info,
		&out.Border, &out.BorderFocus, &out.Selection,
		&out.ProgressFill, &out.ChartAxis, &out.Spinner,
	} {
		fg, bg, attrs := s.Decompose()
		*s = backend.NewStyle(adaptColor(p, fg), adaptColor(p, bg), attrs)
	}
	return &out
}

func adaptColor(p termenv.Profile, c backend.Color) backend.Color {
	if !c.IsRGB() || p == termenv.TrueColor {
		return c
	}
	r, g, b := c.RGB()
	converted := p.Convert(termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
	switch cc := converted.(type) {
	case termenv.ANSIColor:
		return backend.Color(cc)
	case termenv.ANSI256Color:
		return backend.Color(cc)
	default:
		return backend.ColorDefault
	}
}

// Symbols provides consistent iconography for widget decoration.
var Symbols = struct {
	Bullet      string
	BulletEmpty string
	Arrow       string
	Check       string
	Cross       string
	Progress    string
	Spinner     string
}{
	Bullet:      "●",
	BulletEmpty: "○",
	Arrow:       "›",
	Check:       "✓",
	Cross:       "✗",
	Progress:    "░",
	Spinner:     "⣾⣽⣻⢿⡿⣟⣯⣷",
}
