package backend

// Color represents a terminal color.
// Negative is "default", 0-255 are palette colors, and colors with the
// high flag set are packed 24-bit RGB values.
type Color int32

// Palette colors.
const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	ColorBrightBlack   Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
)

const rgbFlag Color = 0x01000000

// ColorRGB packs RGB components into a true color.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16|int32(g)<<8|int32(b)) | rgbFlag
}

// IsRGB reports whether this is a true color rather than a palette entry.
func (c Color) IsRGB() bool {
	return c > 0 && c&rgbFlag != 0
}

// RGB returns the components of a true color, or zeros for palette colors.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// AttrMask is a bit set of text attributes.
type AttrMask uint32

// Attribute flags.
const (
	AttrBold AttrMask = 1 << iota
	AttrBlink
	AttrReverse
	AttrUnderline
	AttrDim
	AttrItalic
	AttrStrikeThrough
)

// Style combines foreground and background colors with text attributes.
// The zero value is not the default style; use DefaultStyle.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// NewStyle builds a style from its parts.
func NewStyle(fg, bg Color, attrs AttrMask) Style {
	return Style{fg: fg, bg: bg, attrs: attrs}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Attrs replaces the attribute set.
func (s Style) Attrs(m AttrMask) Style {
	s.attrs = m
	return s
}

func (s Style) flag(m AttrMask, on bool) Style {
	if on {
		s.attrs |= m
	} else {
		s.attrs &^= m
	}
	return s
}

// Bold enables or disables bold.
func (s Style) Bold(on bool) Style { return s.flag(AttrBold, on) }

// Blink enables or disables blink.
func (s Style) Blink(on bool) Style { return s.flag(AttrBlink, on) }

// Reverse enables or disables reverse video.
func (s Style) Reverse(on bool) Style { return s.flag(AttrReverse, on) }

// Underline enables or disables underline.
func (s Style) Underline(on bool) Style { return s.flag(AttrUnderline, on) }

// Dim enables or disables dim.
func (s Style) Dim(on bool) Style { return s.flag(AttrDim, on) }

// Italic enables or disables italic.
func (s Style) Italic(on bool) Style { return s.flag(AttrItalic, on) }

// StrikeThrough enables or disables strike-through.
func (s Style) StrikeThrough(on bool) Style { return s.flag(AttrStrikeThrough, on) }

// Decompose returns the style's parts.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}

// Fg returns the foreground color.
func (s Style) Fg() Color { return s.fg }

// Bg returns the background color.
func (s Style) Bg() Color { return s.bg }

// Has reports whether all attributes in m are set.
func (s Style) Has(m AttrMask) bool {
	return s.attrs&m == m
}

// Merge overlays the non-default channels of other onto s.
func (s Style) Merge(other Style) Style {
	if other.fg != ColorDefault {
		s.fg = other.fg
	}
	if other.bg != ColorDefault {
		s.bg = other.bg
	}
	s.attrs |= other.attrs
	return s
}

// Invert swaps foreground and background.
func (s Style) Invert() Style {
	s.fg, s.bg = s.bg, s.fg
	return s
}
