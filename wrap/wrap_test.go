package wrap

import (
	"strings"
	"testing"

	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
)

func defaults() *props.Common {
	c := props.NewCommon()
	c.Foreground = backend.ColorRed
	c.Background = backend.ColorWhite
	c.Modifiers = backend.AttrBold
	return &c
}

func lineText(l Line) string {
	var sb strings.Builder
	for _, f := range l {
		sb.WriteString(f.Content)
	}
	return sb.String()
}

func TestSpansSingleLine(t *testing.T) {
	spans := []props.TextSpan{
		props.NewTextSpan("hello, "),
		props.NewTextSpan("world!"),
	}
	lines := Spans(spans, 64, defaults())
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if got := lineText(lines[0]); got != "hello, world!" {
		t.Errorf("line = %q", got)
	}
}

func TestSpansWrapsLongRunAcrossLines(t *testing.T) {
	spans := []props.TextSpan{
		props.NewTextSpan("Hello, everybody, I'm Uncle Camel!"),
		props.NewTextSpan("How's it going today?"),
	}
	lines := Spans(spans, 32, defaults())
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}

func TestSpansWordWrapsSingleRun(t *testing.T) {
	spans := []props.TextSpan{
		props.NewTextSpan("Hello everybody! My name is Uncle Camel. How's it going today?"),
	}
	lines := Spans(spans, 16, defaults())
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
}

func TestSpansMixedRuns(t *testing.T) {
	spans := []props.TextSpan{
		props.NewTextSpan("Lorem ipsum dolor sit amet, consectetur adipiscing elit."),
		props.NewTextSpan("Canem!"),
		props.NewTextSpan("In posuere sollicitudin vulputate"),
		props.NewTextSpan("Sed vitae rutrum quam."),
	}
	lines := Spans(spans, 36, defaults())
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
}

func TestSpansRespectsWidthBound(t *testing.T) {
	spans := []props.TextSpan{
		props.NewTextSpan("The quick brown fox jumps over the lazy dog"),
		props.NewTextSpan("again and again and again"),
	}
	for _, width := range []int{8, 13, 20, 40} {
		for i, line := range Spans(spans, width, defaults()) {
			lw := 0
			for _, f := range line {
				lw += Width(f.Content)
			}
			if lw > width {
				t.Errorf("width %d: line %d is %d wide: %q", width, i, lw, lineText(line))
			}
		}
	}
}

func TestSpansHardSplitsUnbreakableRun(t *testing.T) {
	spans := []props.TextSpan{props.NewTextSpan("abcdefghijklmnop")}
	lines := Spans(spans, 5, defaults())
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	var all strings.Builder
	for _, l := range lines {
		all.WriteString(lineText(l))
	}
	if all.String() != "abcdefghijklmnop" {
		t.Errorf("content not preserved: %q", all.String())
	}
}

func TestSpansZeroWidth(t *testing.T) {
	spans := []props.TextSpan{props.NewTextSpan("text")}
	if lines := Spans(spans, 0, defaults()); lines != nil {
		t.Errorf("got %d lines for zero width, want none", len(lines))
	}
}

func TestResolveStyleSpanOverrides(t *testing.T) {
	span := props.NewTextSpan("test").
		WithFg(backend.ColorYellow).
		WithBg(backend.ColorCyan).
		Underlined()

	style := ResolveStyle(span, defaults())
	if style.Fg() != backend.ColorYellow {
		t.Errorf("fg = %v, want yellow", style.Fg())
	}
	if style.Bg() != backend.ColorCyan {
		t.Errorf("bg = %v, want cyan", style.Bg())
	}
	if !style.Has(backend.AttrUnderline) {
		t.Error("underline modifier lost")
	}
	if style.Has(backend.AttrBold) {
		t.Error("widget modifiers leaked into styled span")
	}
}

func TestResolveStyleDefaultsInherit(t *testing.T) {
	span := props.NewTextSpan("test")

	style := ResolveStyle(span, defaults())
	if style.Fg() != backend.ColorRed {
		t.Errorf("fg = %v, want inherited red", style.Fg())
	}
	if style.Bg() != backend.ColorWhite {
		t.Errorf("bg = %v, want inherited white", style.Bg())
	}
	if !style.Has(backend.AttrBold) {
		t.Error("inherited bold modifier missing")
	}
}

func TestCursorPosition(t *testing.T) {
	ascii := []rune{'v', 'e', 'e', 's', 'o'}
	if got := CursorPosition(ascii); got != 5 {
		t.Errorf("ascii cursor = %d, want 5", got)
	}
	if got := CursorPosition(ascii[:3]); got != 3 {
		t.Errorf("ascii prefix cursor = %d, want 3", got)
	}

	cyrillic := []rune("я хочу спать")
	if got := CursorPosition(cyrillic[:6]); got != 6 {
		t.Errorf("cyrillic cursor = %d, want 6", got)
	}

	if got := CursorPosition([]rune{'H', 'i', '😄'}); got != 4 {
		t.Errorf("emoji cursor = %d, want 4", got)
	}
	if got := CursorPosition([]rune{'我', '之', '😄'}); got != 6 {
		t.Errorf("cjk cursor = %d, want 6", got)
	}
}
