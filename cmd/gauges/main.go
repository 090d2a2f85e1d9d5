// Command gauges animates the whisker progress widgets: a block progress
// bar, a line gauge, and a spinner. Progress advances on a timer, q quits.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/odvcencio/whisker/backend/tcell"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/terminal"
	"github.com/odvcencio/whisker/theme"
	"github.com/odvcencio/whisker/widgets"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	be, err := tcell.New()
	if err != nil {
		return err
	}
	if err := be.Init(); err != nil {
		return err
	}
	defer be.Fini()
	be.HideCursor()

	th := theme.Default().Adapt(theme.DetectProfile())

	progress := widgets.NewProgressBar().
		WithTitle("download", props.AlignLeft).
		WithProgbarColor(th.ProgressFill.Fg())
	gauge := widgets.NewLineGauge().
		WithTitle("upload", props.AlignLeft).
		WithStyle(widgets.LineThick).
		WithProgbarColor(th.Info.Fg())
	spinner := widgets.NewSpinner().
		WithForeground(th.Spinner.Fg())
	hint := widgets.NewLabel().
		WithText("q: quit").
		WithForeground(th.TextMuted.Fg())

	w, h := be.Size()
	buf := runtime.NewBuffer(w, h)
	ratio := 0.0

	draw := func() {
		progress.WithProgress(ratio)
		gauge.WithProgress(1 - ratio)
		buf.Clear()
		chunks := widgets.SplitArea(props.NewLayout().
			WithDirection(props.SplitVertical).
			WithConstraints(props.Length(3), props.Length(3), props.Length(1), props.Length(1)),
			buf.Area())
		progress.Render(buf, chunks[0])
		gauge.Render(buf, chunks[1])
		spinner.Render(buf, chunks[2])
		hint.Render(buf, chunks[3])
		buf.Flush(be)
		be.Show()
	}
	draw()

	// The timer drives the animation through the event queue so the
	// render loop has a single owner.
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			if err := be.PostEvent(terminal.KeyEvent{Key: terminal.KeyNone}); err != nil {
				return
			}
		}
	}()

	for {
		ev := be.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case terminal.ResizeEvent:
			buf.Resize(e.Width, e.Height)
			buf.MarkAllDirty()
			be.Sync()
		case terminal.KeyEvent:
			if e.Key == terminal.KeyCtrlC || e.Key == terminal.KeyEscape ||
				(e.Key == terminal.KeyRune && e.Rune == 'q') {
				return nil
			}
			if e.Key == terminal.KeyNone {
				ratio += 0.01
				if ratio > 1 {
					ratio = 0
				}
			}
		}
		draw()
	}
}
