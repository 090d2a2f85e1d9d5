package props

import "github.com/odvcencio/whisker/backend"

// BorderSides selects which sides of a block are drawn.
type BorderSides uint8

const (
	BorderTop BorderSides = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BordersNone BorderSides = 0
	BordersAll              = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether all sides in m are selected.
func (s BorderSides) Has(m BorderSides) bool {
	return s&m == m
}

// BorderType selects the line characters used for borders.
type BorderType int

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
)

// BorderProps configures a widget's border block.
type BorderProps struct {
	Sides     BorderSides
	Type      BorderType
	Color     backend.Color
	Modifiers backend.AttrMask
}

// DefaultBorders enables all plain sides in the default color.
func DefaultBorders() BorderProps {
	return BorderProps{Sides: BordersAll, Type: BorderPlain, Color: backend.ColorDefault}
}

// WithSides sets the drawn sides.
func (b BorderProps) WithSides(s BorderSides) BorderProps {
	b.Sides = s
	return b
}

// WithType sets the border line type.
func (b BorderProps) WithType(t BorderType) BorderProps {
	b.Type = t
	return b
}

// WithColor sets the border color.
func (b BorderProps) WithColor(c backend.Color) BorderProps {
	b.Color = c
	return b
}

// Style returns the style borders are drawn with.
func (b BorderProps) Style() backend.Style {
	return backend.DefaultStyle().Foreground(b.Color).Attrs(b.Modifiers)
}

// Runes returns the corner and edge runes for the border type, in the
// order top-left, top-right, bottom-left, bottom-right, horizontal,
// vertical.
func (b BorderProps) Runes() [6]rune {
	switch b.Type {
	case BorderRounded:
		return [6]rune{'╭', '╮', '╰', '╯', '─', '│'}
	case BorderDouble:
		return [6]rune{'╔', '╗', '╚', '╝', '═', '║'}
	case BorderThick:
		return [6]rune{'┏', '┓', '┗', '┛', '━', '┃'}
	default:
		return [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	}
}
