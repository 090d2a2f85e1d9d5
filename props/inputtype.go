package props

import (
	"strings"
	"unicode"
)

// InputKind discriminates input validation modes.
type InputKind int

const (
	InputText InputKind = iota
	InputNumber
	InputTelephone
	InputEmail
	InputColor
	InputPassword
)

// TypeSpec configures how an input widget validates and displays typed
// characters. Password inputs render every character as Mask.
type TypeSpec struct {
	Kind InputKind
	Mask rune
}

// TextInput accepts any character.
func TextInput() TypeSpec { return TypeSpec{Kind: InputText} }

// NumberInput accepts an optional leading sign followed by digits.
func NumberInput() TypeSpec { return TypeSpec{Kind: InputNumber} }

// TelephoneInput accepts digits and common phone punctuation.
func TelephoneInput() TypeSpec { return TypeSpec{Kind: InputTelephone} }

// EmailInput accepts the characters that may appear in an address.
func EmailInput() TypeSpec { return TypeSpec{Kind: InputEmail} }

// ColorInput accepts hex color strings like #1f2430.
func ColorInput() TypeSpec { return TypeSpec{Kind: InputColor} }

// PasswordInput accepts any character and renders mask instead.
func PasswordInput(mask rune) TypeSpec { return TypeSpec{Kind: InputPassword, Mask: mask} }

// CharValid reports whether ch may be appended to the current value.
// This is a keystroke filter, not full validation; ValueValid checks
// the assembled value.
func (t TypeSpec) CharValid(current string, ch rune) bool {
	switch t.Kind {
	case InputNumber:
		if ch == '-' || ch == '+' {
			return current == ""
		}
		return unicode.IsDigit(ch)
	case InputTelephone:
		return unicode.IsDigit(ch) || strings.ContainsRune("+-() .", ch)
	case InputEmail:
		return unicode.IsLetter(ch) || unicode.IsDigit(ch) ||
			strings.ContainsRune("@.!#$%&'*+-/=?^_`{|}~", ch)
	case InputColor:
		if ch == '#' {
			return current == ""
		}
		return isHexDigit(ch)
	default:
		return true
	}
}

// ValueValid reports whether the whole value satisfies the input type.
func (t TypeSpec) ValueValid(value string) bool {
	switch t.Kind {
	case InputNumber:
		s := strings.TrimPrefix(strings.TrimPrefix(value, "-"), "+")
		if s == "" {
			return value == ""
		}
		for _, ch := range s {
			if !unicode.IsDigit(ch) {
				return false
			}
		}
		return true
	case InputEmail:
		at := strings.IndexRune(value, '@')
		return value == "" || (at > 0 && strings.ContainsRune(value[at:], '.'))
	case InputColor:
		if value == "" {
			return true
		}
		if !strings.HasPrefix(value, "#") {
			return false
		}
		hex := value[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		for _, ch := range hex {
			if !isHexDigit(ch) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func isHexDigit(ch rune) bool {
	return unicode.IsDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
