// Command charts renders the whisker data widgets: a braille line chart,
// a bar chart, and a sparkline. Left/right pan the focused chart, tab
// switches between them, q quits.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/odvcencio/whisker/backend/tcell"
	"github.com/odvcencio/whisker/command"
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

	chart := widgets.NewChart().
		WithTitle("sine", props.AlignCenter).
		WithXBounds(0, 64).
		WithYBounds(-1.2, 1.2).
		WithXLabels("0", "16", "32", "48", "64").
		WithYLabels("-1", "0", "1").
		WithXTitle("t").
		WithYTitle("sin(t)").
		WithDatasets(props.DatasetSpec{
			Name:   "wave",
			Style:  th.Info,
			Graph:  props.GraphLine,
			Points: sinePoints(256),
		})

	bars := widgets.NewBarChart().
		WithTitle("requests by region", props.AlignLeft).
		WithBarColor(th.Accent.Fg()).
		WithData(
			widgets.Bar{Label: "use1", Value: 320},
			widgets.Bar{Label: "usw2", Value: 210},
			widgets.Bar{Label: "euc1", Value: 450},
			widgets.Bar{Label: "apse", Value: 120},
			widgets.Bar{Label: "sae1", Value: 280},
		)

	spark := widgets.NewSparkline().
		WithTitle("latency", props.AlignLeft).
		WithForeground(th.Success.Fg()).
		WithData(4, 8, 15, 16, 23, 42, 31, 18, 9, 27, 36, 12, 20, 44, 7)

	panels := []widgets.Widget{chart, bars}
	focused := 0
	panels[focused].SetAttr(props.Focus, props.FlagValue(true))

	w, h := be.Size()
	buf := runtime.NewBuffer(w, h)

	draw := func() {
		buf.Clear()
		chunks := widgets.SplitArea(props.NewLayout().
			WithDirection(props.SplitVertical).
			WithConstraints(props.Min(10), props.Length(10), props.Length(4)),
			buf.Area())
		chart.Render(buf, chunks[0])
		bars.Render(buf, chunks[1])
		spark.Render(buf, chunks[2])
		buf.Flush(be)
		be.Show()
	}
	draw()

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
			switch {
			case e.Key == terminal.KeyCtrlC || e.Key == terminal.KeyEscape,
				e.Key == terminal.KeyRune && e.Rune == 'q':
				return nil
			case e.Key == terminal.KeyTab:
				panels[focused].SetAttr(props.Focus, props.FlagValue(false))
				focused = (focused + 1) % len(panels)
				panels[focused].SetAttr(props.Focus, props.FlagValue(true))
			case e.Key == terminal.KeyLeft:
				panels[focused].Perform(command.Move{Direction: command.DirLeft})
			case e.Key == terminal.KeyRight:
				panels[focused].Perform(command.Move{Direction: command.DirRight})
			case e.Key == terminal.KeyHome:
				panels[focused].Perform(command.GoTo{Position: command.Begin})
			case e.Key == terminal.KeyEnd:
				panels[focused].Perform(command.GoTo{Position: command.End})
			}
		}
		draw()
	}
}

func sinePoints(n int) [][2]float64 {
	points := make([][2]float64, n)
	for i := range points {
		t := float64(i) * 64 / float64(n)
		points[i] = [2]float64{t, math.Sin(t / 4)}
	}
	return points
}
