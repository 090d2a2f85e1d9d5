package sim

import (
	"strings"
	"testing"
	"time"

	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/terminal"
	"github.com/odvcencio/whisker/widgets"
)

func TestBackendBasicRendering(t *testing.T) {
	sim := New(20, 5)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	style := backend.DefaultStyle().Foreground(backend.ColorWhite)
	for i, r := range "Hello, World!" {
		sim.SetContent(i, 0, r, nil, style)
	}
	sim.Show()

	_, h := sim.Size()
	lines := strings.Split(sim.Capture(), "\n")
	if len(lines) != h {
		t.Errorf("expected %d lines, got %d", h, len(lines))
	}
	if !strings.HasPrefix(lines[0], "Hello, World!") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestBackendResize(t *testing.T) {
	sim := New(80, 24)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	sim.Resize(40, 12)

	w, h := sim.Size()
	if w != 40 || h != 12 {
		t.Errorf("size after resize = %dx%d, want 40x12", w, h)
	}
}

func TestBackendFindText(t *testing.T) {
	sim := New(40, 10)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	style := backend.DefaultStyle()
	for i, r := range "target" {
		sim.SetContent(5+i, 3, r, nil, style)
	}
	sim.Show()

	if x, y := sim.FindText("target"); x != 5 || y != 3 {
		t.Errorf("FindText = (%d, %d), want (5, 3)", x, y)
	}
	if x, y := sim.FindText("missing"); x != -1 || y != -1 {
		t.Errorf("FindText missing = (%d, %d), want (-1, -1)", x, y)
	}
	if !sim.ContainsText("target") {
		t.Error("ContainsText should find rendered text")
	}
}

func TestBackendInjectKey(t *testing.T) {
	sim := New(20, 10)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	sim.InjectKeyRune('a')

	done := make(chan terminal.Event, 1)
	go func() {
		done <- sim.PollEvent()
	}()

	var ev terminal.Event
	select {
	case ev = <-done:
	case <-time.After(time.Second):
		t.Fatal("PollEvent did not deliver injected key")
	}

	keyEv, ok := ev.(terminal.KeyEvent)
	if !ok {
		t.Fatalf("event = %T, want KeyEvent", ev)
	}
	if keyEv.Key != terminal.KeyRune || keyEv.Rune != 'a' {
		t.Errorf("event = key %v rune %q, want rune 'a'", keyEv.Key, keyEv.Rune)
	}
}

func TestBackendStyles(t *testing.T) {
	sim := New(20, 10)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	style := backend.DefaultStyle().
		Foreground(backend.ColorRed).
		Background(backend.ColorBlue).
		Bold(true)
	sim.SetContent(0, 0, 'S', nil, style)
	sim.Show()

	mainc, _, captured := sim.CaptureCell(0, 0)
	if mainc != 'S' {
		t.Errorf("cell = %q, want 'S'", mainc)
	}
	if !captured.Has(backend.AttrBold) {
		t.Error("bold attribute lost in round trip")
	}
	if captured.Fg() != backend.ColorRed {
		t.Errorf("fg = %v, want red", captured.Fg())
	}
}

func TestWidgetFlushThroughBackend(t *testing.T) {
	sim := New(20, 5)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	p := widgets.NewParagraph().
		WithTitle("demo", props.AlignLeft).
		WithText(props.NewTextSpan("body text"))

	buf := runtime.NewBuffer(sim.Size())
	p.Render(buf, buf.Area())
	buf.Flush(sim)
	sim.Show()

	if !sim.ContainsText("demo") {
		t.Error("title not flushed to backend")
	}
	if !sim.ContainsText("body text") {
		t.Error("content not flushed to backend")
	}
	if buf.IsDirty() {
		t.Error("flush should clear dirty state")
	}
}
