package widgets

import (
	"testing"

	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
)

func TestProgressBarRatioOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ratio 6.0 did not panic")
		}
	}()
	NewProgressBar().WithProgress(6.0)
}

func TestProgressBarNegativeRatioPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ratio -0.1 did not panic")
		}
	}()
	NewProgressBar().WithProgress(-0.1)
}

func TestProgressBarRenderFill(t *testing.T) {
	p := NewProgressBar().
		WithProgress(0.5).
		WithProgbarColor(backend.ColorGreen).
		WithBorders(props.BorderProps{Sides: props.BordersNone}).
		WithLabel("")

	buf := runtime.NewBuffer(10, 1)
	p.Render(buf, buf.Area())

	if got := buf.Get(0, 0).Style.Bg(); got != backend.ColorGreen {
		t.Errorf("fill cell bg = %v, want green", got)
	}
	if got := buf.Get(9, 0).Style.Bg(); got == backend.ColorGreen {
		t.Error("track cell past fill is filled")
	}
}

func TestLineGaugeUnknownStylePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("unknown line style did not panic")
		}
	}()
	NewLineGauge().WithStyle(99)
}

func TestLineGaugeRatioOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ratio 2.0 did not panic")
		}
	}()
	NewLineGauge().WithProgress(2.0)
}

func TestLineGaugeRender(t *testing.T) {
	l := NewLineGauge().
		WithProgress(1.0).
		WithLabel("done").
		WithStyle(LineThick).
		WithBorders(props.BorderProps{Sides: props.BordersNone})

	buf := runtime.NewBuffer(12, 1)
	l.Render(buf, buf.Area())

	if got := buf.Get(0, 0).Rune; got != 'd' {
		t.Errorf("label cell = %q, want 'd'", got)
	}
	if got := buf.Get(5, 0).Rune; got != '━' {
		t.Errorf("line cell = %q, want thick stroke", got)
	}
}

func TestSparklineRender(t *testing.T) {
	s := NewSparkline().WithData(0, 4, 8)
	s.SetAttr(props.Borders, props.BordersValue(props.BorderProps{Sides: props.BordersNone}))

	buf := runtime.NewBuffer(3, 1)
	s.Render(buf, buf.Area())

	if got := buf.Get(2, 0).Rune; got != '█' {
		t.Errorf("peak column = %q, want full block", got)
	}
	if got := buf.Get(1, 0).Rune; got != '▄' {
		t.Errorf("half column = %q, want half block", got)
	}
	if got := buf.Get(0, 0).Rune; got == '█' {
		t.Error("zero column drew a full block")
	}
}
