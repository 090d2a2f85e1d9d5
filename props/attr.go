// Package props provides the configuration model shared by every widget:
// semantic attribute keys, their tagged values, the dynamic store backing
// the Custom extension point, and the typed common configuration block.
package props

type attrID int

const (
	attrNone attrID = iota
	attrAlignment
	attrBackground
	attrBorders
	attrColor
	attrContent
	attrDataset
	attrDirection
	attrDisplay
	attrFocus
	attrFocusStyle
	attrForeground
	attrHeight
	attrHighlightedColor
	attrHighlightedStr
	attrInputLength
	attrInputType
	attrLayout
	attrRewind
	attrScroll
	attrScrollStep
	attrShape
	attrStyle
	attrText
	attrTextProps
	attrTitle
	attrValue
	attrWidth
	attrCustom
)

// Attr identifies a widget attribute. The recognized keys are a closed
// set; Custom builds application-defined keys by name.
type Attr struct {
	id   attrID
	name string
}

// Recognized attribute keys.
var (
	Alignment        = Attr{id: attrAlignment}
	Background       = Attr{id: attrBackground}
	Borders          = Attr{id: attrBorders}
	Color            = Attr{id: attrColor}
	Content          = Attr{id: attrContent}
	Dataset          = Attr{id: attrDataset}
	Direction        = Attr{id: attrDirection}
	Display          = Attr{id: attrDisplay}
	Focus            = Attr{id: attrFocus}
	FocusStyle       = Attr{id: attrFocusStyle}
	Foreground       = Attr{id: attrForeground}
	Height           = Attr{id: attrHeight}
	HighlightedColor = Attr{id: attrHighlightedColor}
	HighlightedStr   = Attr{id: attrHighlightedStr}
	InputLength      = Attr{id: attrInputLength}
	InputType        = Attr{id: attrInputType}
	Layout           = Attr{id: attrLayout}
	Rewind           = Attr{id: attrRewind}
	Scroll           = Attr{id: attrScroll}
	ScrollStep       = Attr{id: attrScrollStep}
	Shape            = Attr{id: attrShape}
	Style            = Attr{id: attrStyle}
	Text             = Attr{id: attrText}
	TextProps        = Attr{id: attrTextProps}
	Title            = Attr{id: attrTitle}
	ValueAttr        = Attr{id: attrValue}
	Width            = Attr{id: attrWidth}
)

// Custom returns an application-defined attribute key.
func Custom(name string) Attr {
	return Attr{id: attrCustom, name: name}
}

// IsCustom reports whether the key is an application-defined one.
func (a Attr) IsCustom() bool {
	return a.id == attrCustom
}

// Name returns the name of a Custom key, or "" for recognized keys.
func (a Attr) Name() string {
	return a.name
}
