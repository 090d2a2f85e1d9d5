// Command gallery shows the interactive whisker widgets side by side.
// Tab cycles focus, arrow keys move, space toggles, enter submits, q quits.
package main

import (
	"fmt"
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

	rows := props.NewTableBuilder().
		AddCol(props.NewTextSpan("alpha")).AddRow().
		AddCol(props.NewTextSpan("bravo")).AddRow().
		AddCol(props.NewTextSpan("charlie")).AddRow().
		AddCol(props.NewTextSpan("delta")).AddRow().
		AddCol(props.NewTextSpan("echo")).
		Build()

	input := widgets.NewInput().
		WithTitle("name", props.AlignLeft).
		WithValue("whisker")
	list := widgets.NewList().
		WithTitle("phonetic", props.AlignLeft).
		WithRows(rows).
		Scrollable(true).
		WithHighlightedColor(th.Accent.Fg())
	checkbox := widgets.NewCheckbox().
		WithTitle("toppings", props.AlignLeft).
		WithChoices("cheese", "bacon", "onions").
		WithValues(0)
	radio := widgets.NewRadio().
		WithTitle("size", props.AlignLeft).
		WithChoices("small", "medium", "large").
		WithValue(1)
	selector := widgets.NewSelect().
		WithTitle("region", props.AlignLeft).
		WithChoices("us-east", "us-west", "eu-central").
		WithHighlightedColor(th.Accent.Fg())
	status := widgets.NewLabel().
		WithText("tab: next widget, q: quit").
		WithForeground(th.TextMuted.Fg())

	focusables := []widgets.Widget{input, list, checkbox, radio, selector}
	for _, w := range focusables {
		w.SetAttr(props.FocusStyle, props.StyleValue(th.BorderFocus))
	}
	focused := 0
	focusables[focused].SetAttr(props.Focus, props.FlagValue(true))

	w, h := be.Size()
	buf := runtime.NewBuffer(w, h)

	draw := func() {
		buf.Clear()
		area := buf.Area()
		chunks := splitGallery(area)
		input.Render(buf, chunks[0])
		list.Render(buf, chunks[1])
		checkbox.Render(buf, chunks[2])
		radio.Render(buf, chunks[3])
		selector.Render(buf, chunks[4])
		status.Render(buf, chunks[5])
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
			if e.Key == terminal.KeyCtrlC || e.Key == terminal.KeyEscape ||
				(e.Key == terminal.KeyRune && e.Rune == 'q') {
				return nil
			}
			if e.Key == terminal.KeyTab {
				focusables[focused].SetAttr(props.Focus, props.FlagValue(false))
				focused = (focused + 1) % len(focusables)
				focusables[focused].SetAttr(props.Focus, props.FlagValue(true))
				break
			}
			if cmd := keyToCmd(e); cmd != nil {
				focusables[focused].Perform(cmd)
			}
		}
		draw()
	}
}

// splitGallery lays the demo out as six stacked rows.
func splitGallery(area runtime.Rect) []runtime.Rect {
	layout := props.NewLayout().
		WithDirection(props.SplitVertical).
		WithConstraints(
			props.Length(3),
			props.Length(7),
			props.Length(5),
			props.Length(5),
			props.Min(5),
			props.Length(1),
		)
	return widgets.SplitArea(layout, area)
}

func keyToCmd(e terminal.KeyEvent) command.Cmd {
	switch e.Key {
	case terminal.KeyUp:
		return command.Move{Direction: command.DirUp}
	case terminal.KeyDown:
		return command.Move{Direction: command.DirDown}
	case terminal.KeyLeft:
		return command.Move{Direction: command.DirLeft}
	case terminal.KeyRight:
		return command.Move{Direction: command.DirRight}
	case terminal.KeyPageUp:
		return command.Scroll{Direction: command.DirUp}
	case terminal.KeyPageDown:
		return command.Scroll{Direction: command.DirDown}
	case terminal.KeyHome:
		return command.GoTo{Position: command.Begin}
	case terminal.KeyEnd:
		return command.GoTo{Position: command.End}
	case terminal.KeyEnter:
		return command.Submit{}
	case terminal.KeyBackspace:
		return command.Delete{}
	case terminal.KeyDelete:
		return command.Cancel{}
	case terminal.KeyRune:
		if e.Rune == ' ' {
			return command.Toggle{}
		}
		return command.Type{Ch: e.Rune}
	default:
		return nil
	}
}
