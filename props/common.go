package props

import "github.com/odvcencio/whisker/backend"

// Common holds the shared configuration every widget understands. Widgets
// route the well-known attributes through this typed struct and fall back to
// the dynamic Store only for custom keys.
type Common struct {
	Foreground backend.Color
	Background backend.Color
	Modifiers  backend.AttrMask
	Borders    BorderProps
	Title      TitleSpec
	FocusStyle backend.Style

	Visible    bool
	Focus      bool
	Rewind     bool
	ScrollStep int

	HighlightedStr   string
	HighlightedColor backend.Color

	hasTitle       bool
	hasFocusStyle  bool
	hasHighlight   bool
	hasHighlightFg bool
}

// NewCommon returns the default shared configuration: visible, default
// colors, no borders drawn until set, scroll step of 8.
func NewCommon() Common {
	return Common{
		Foreground: backend.ColorDefault,
		Background: backend.ColorDefault,
		Borders:    DefaultBorders(),
		Visible:    true,
		ScrollStep: 8,
	}
}

// Apply routes a well-known attribute into the typed fields. It reports
// whether the attribute was recognized; unrecognized attributes belong in
// the dynamic store.
func (c *Common) Apply(attr Attr, value Value) bool {
	switch attr {
	case Foreground:
		c.Foreground = value.UnwrapColor()
	case Background:
		c.Background = value.UnwrapColor()
	case TextProps:
		c.Modifiers = value.UnwrapModifiers()
	case Borders:
		c.Borders = value.UnwrapBorders()
	case Title:
		c.Title = value.UnwrapTitle()
		c.hasTitle = true
	case FocusStyle:
		c.FocusStyle = value.UnwrapStyle()
		c.hasFocusStyle = true
	case Display:
		c.Visible = value.UnwrapFlag()
	case Focus:
		c.Focus = value.UnwrapFlag()
	case Rewind:
		c.Rewind = value.UnwrapFlag()
	case ScrollStep:
		c.ScrollStep = value.UnwrapLength()
	case HighlightedStr:
		c.HighlightedStr = value.UnwrapString()
		c.hasHighlight = true
	case HighlightedColor:
		c.HighlightedColor = value.UnwrapColor()
		c.hasHighlightFg = true
	default:
		return false
	}
	return true
}

// Lookup reports the current value of a well-known attribute. The second
// return is false when the attribute is not recognized or has never been
// set and has no meaningful default.
func (c *Common) Lookup(attr Attr) (Value, bool) {
	switch attr {
	case Foreground:
		return ColorValue(c.Foreground), true
	case Background:
		return ColorValue(c.Background), true
	case TextProps:
		return ModifiersValue(c.Modifiers), true
	case Borders:
		return BordersValue(c.Borders), true
	case Title:
		if !c.hasTitle {
			return Value{}, false
		}
		return TitleValue(c.Title.Text, c.Title.Align), true
	case FocusStyle:
		if !c.hasFocusStyle {
			return Value{}, false
		}
		return StyleValue(c.FocusStyle), true
	case Display:
		return FlagValue(c.Visible), true
	case Focus:
		return FlagValue(c.Focus), true
	case Rewind:
		return FlagValue(c.Rewind), true
	case ScrollStep:
		return LengthValue(c.ScrollStep), true
	case HighlightedStr:
		if !c.hasHighlight {
			return Value{}, false
		}
		return StringValue(c.HighlightedStr), true
	case HighlightedColor:
		if !c.hasHighlightFg {
			return Value{}, false
		}
		return ColorValue(c.HighlightedColor), true
	}
	return Value{}, false
}

// HasTitle reports whether a title was configured.
func (c *Common) HasTitle() bool { return c.hasTitle }

// HighlightForeground returns the highlight color, falling back to the
// widget foreground when none was set.
func (c *Common) HighlightForeground() backend.Color {
	if c.hasHighlightFg {
		return c.HighlightedColor
	}
	return c.Foreground
}

// Style builds the base text style from the shared colors and modifiers.
func (c *Common) Style() backend.Style {
	return backend.NewStyle(c.Foreground, c.Background, c.Modifiers)
}

// BorderStyle returns the border style, substituting the focus style when
// the widget has focus and one was configured.
func (c *Common) BorderStyle() backend.Style {
	if c.Focus && c.hasFocusStyle {
		return c.FocusStyle
	}
	return c.Borders.Style()
}
