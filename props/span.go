package props

import "github.com/odvcencio/whisker/backend"

// TextSpan is a contiguous run of text carrying one uniform style.
// Channels left at their defaults inherit from the owning widget's
// Foreground/Background/TextProps attributes at layout time.
type TextSpan struct {
	Content   string
	Fg        backend.Color
	Bg        backend.Color
	Modifiers backend.AttrMask
}

// NewTextSpan creates a span with default styling.
func NewTextSpan(content string) TextSpan {
	return TextSpan{Content: content, Fg: backend.ColorDefault, Bg: backend.ColorDefault}
}

// WithFg sets the foreground color.
func (t TextSpan) WithFg(c backend.Color) TextSpan {
	t.Fg = c
	return t
}

// WithBg sets the background color.
func (t TextSpan) WithBg(c backend.Color) TextSpan {
	t.Bg = c
	return t
}

// Bold adds the bold modifier.
func (t TextSpan) Bold() TextSpan {
	t.Modifiers |= backend.AttrBold
	return t
}

// Italic adds the italic modifier.
func (t TextSpan) Italic() TextSpan {
	t.Modifiers |= backend.AttrItalic
	return t
}

// Underlined adds the underline modifier.
func (t TextSpan) Underlined() TextSpan {
	t.Modifiers |= backend.AttrUnderline
	return t
}

// Reversed adds the reverse modifier.
func (t TextSpan) Reversed() TextSpan {
	t.Modifiers |= backend.AttrReverse
	return t
}

// Strikethrough adds the strike-through modifier.
func (t TextSpan) Strikethrough() TextSpan {
	t.Modifiers |= backend.AttrStrikeThrough
	return t
}

// TextAlign positions text within its line or block.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TitleSpec is a block title with its alignment.
type TitleSpec struct {
	Text  string
	Align TextAlign
}
