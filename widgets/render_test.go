package widgets

import (
	"strings"
	"testing"

	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
)

func bufferRow(buf *runtime.Buffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestLabelRender(t *testing.T) {
	tests := []struct {
		name  string
		align props.TextAlign
		want  string
	}{
		{"left", props.AlignLeft, "hi"},
		{"center", props.AlignCenter, "    hi"},
		{"right", props.AlignRight, "        hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLabel().WithText("hi").WithAlignment(tt.align)
			buf := runtime.NewBuffer(10, 1)
			l.Render(buf, buf.Area())
			if got := bufferRow(buf, 0); got != tt.want {
				t.Errorf("row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanRenderStyles(t *testing.T) {
	s := NewSpan().WithSpans(
		props.NewTextSpan("red").WithFg(backend.ColorRed),
		props.NewTextSpan("blue").WithFg(backend.ColorBlue),
	)
	buf := runtime.NewBuffer(10, 1)
	s.Render(buf, buf.Area())

	if got := bufferRow(buf, 0); got != "redblue" {
		t.Fatalf("row = %q, want %q", got, "redblue")
	}
	if got := buf.Get(0, 0).Style.Fg(); got != backend.ColorRed {
		t.Errorf("first run fg = %v, want red", got)
	}
	if got := buf.Get(3, 0).Style.Fg(); got != backend.ColorBlue {
		t.Errorf("second run fg = %v, want blue", got)
	}
}

func TestParagraphRenderWrapsInsideBorders(t *testing.T) {
	p := NewParagraph().
		WithTitle("note", props.AlignLeft).
		WithText(props.NewTextSpan("one two three"))

	buf := runtime.NewBuffer(9, 4)
	p.Render(buf, buf.Area())

	if got := buf.Get(0, 0).Rune; got != '┌' {
		t.Errorf("corner = %q, want border", got)
	}
	if got := buf.Get(1, 0).Rune; got != 'n' {
		t.Errorf("title cell = %q, want 'n'", got)
	}
	// Width 7 inside borders: "one two" then "three".
	if got := bufferRow(buf, 1); got != "│one two│" {
		t.Errorf("row 1 = %q, want %q", got, "│one two│")
	}
	if got := buf.Get(1, 2).Rune; got != 't' {
		t.Errorf("wrapped row starts with %q, want 't'", got)
	}
}

func TestTextareaScrolls(t *testing.T) {
	ta := NewTextarea().
		WithText(
			props.NewTextSpan("first"),
			props.NewTextSpan("second"),
			props.NewTextSpan("third"),
		).
		WithBorders(props.BorderProps{Sides: props.BordersNone})

	res := ta.Perform(command.Move{Direction: command.DirDown})
	if _, ok := res.(command.Changed); !ok {
		t.Fatalf("scroll result = %#v, want Changed", res)
	}
	if ta.State() != command.NoState {
		t.Errorf("state = %#v, want none", ta.State())
	}

	buf := runtime.NewBuffer(10, 2)
	ta.Render(buf, buf.Area())
	if got := bufferRow(buf, 0); got != "second" {
		t.Errorf("top row = %q, want %q", got, "second")
	}
}

func TestTableRenderColumns(t *testing.T) {
	rows := props.NewTableBuilder().
		AddCol(props.NewTextSpan("k1")).AddCol(props.NewTextSpan("v1")).AddRow().
		AddCol(props.NewTextSpan("k2")).AddCol(props.NewTextSpan("v2")).
		Build()

	tbl := NewTable().
		WithRows(rows).
		WithHeaders("key", "value").
		WithColumnWidths(50, 50).
		WithBorders(props.BorderProps{Sides: props.BordersNone})

	buf := runtime.NewBuffer(12, 3)
	tbl.Render(buf, buf.Area())

	if got := bufferRow(buf, 0); got != "key   value" {
		t.Errorf("header row = %q, want %q", got, "key   value")
	}
	if got := bufferRow(buf, 1); got != "k1    v1" {
		t.Errorf("row 1 = %q, want %q", got, "k1    v1")
	}
}

func TestSpinnerAdvancesPerRender(t *testing.T) {
	s := NewSpinner().WithSequence("ab")
	buf := runtime.NewBuffer(1, 1)

	s.Render(buf, buf.Area())
	if got := buf.Get(0, 0).Rune; got != 'a' {
		t.Fatalf("frame 1 = %q, want 'a'", got)
	}
	s.Render(buf, buf.Area())
	if got := buf.Get(0, 0).Rune; got != 'b' {
		t.Errorf("frame 2 = %q, want 'b'", got)
	}
	s.Render(buf, buf.Area())
	if got := buf.Get(0, 0).Rune; got != 'a' {
		t.Errorf("frame 3 = %q, want wrapped 'a'", got)
	}
}

func TestPhantomRendersNothing(t *testing.T) {
	p := NewPhantom()
	p.SetAttr(props.Text, props.StringValue("invisible"))

	buf := runtime.NewBuffer(10, 2)
	p.Render(buf, buf.Area())
	if buf.IsDirty() {
		t.Error("phantom wrote cells")
	}
	if p.State() != command.NoState {
		t.Errorf("state = %#v, want none", p.State())
	}
	if res := p.Perform(command.Submit{}); res != command.ResultNone {
		t.Errorf("perform = %#v, want none", res)
	}
}
