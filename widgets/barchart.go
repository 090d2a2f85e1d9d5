package widgets

import (
	"fmt"

	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// BarChart draws labeled vertical bars. In active mode the arrow and
// home/end keys pan the visible window over the data; disabled charts
// ignore commands entirely.
type BarChart struct {
	Base
	cursor int
}

var _ Widget = (*BarChart)(nil)

// NewBarChart creates an empty bar chart with default borders.
func NewBarChart() *BarChart {
	return &BarChart{Base: NewBase()}
}

// Bar is one labeled value of a bar chart.
type Bar struct {
	Label string
	Value uint64
}

// WithData sets the bars in display order.
func (b *BarChart) WithData(bars ...Bar) *BarChart {
	pairs := make([]props.Payload, len(bars))
	for i, bar := range bars {
		pairs[i] = props.PairPayload(props.StrProp(bar.Label), props.U64Prop(bar.Value))
	}
	b.SetAttr(props.Dataset, props.PayloadValue(props.LinkedPayload(pairs...)))
	return b
}

// WithBarWidth sets the column width of each bar.
func (b *BarChart) WithBarWidth(w int) *BarChart {
	b.SetAttr(props.Width, props.LengthValue(w))
	return b
}

// WithMaxBars caps the number of visible bars.
func (b *BarChart) WithMaxBars(n int) *BarChart {
	b.SetAttr(props.Height, props.LengthValue(n))
	return b
}

// WithTitle sets the block title.
func (b *BarChart) WithTitle(title string, align props.TextAlign) *BarChart {
	b.SetAttr(props.Title, props.TitleValue(title, align))
	return b
}

// WithBorders sets the block borders.
func (b *BarChart) WithBorders(bp props.BorderProps) *BarChart {
	b.SetAttr(props.Borders, props.BordersValue(bp))
	return b
}

// WithBarColor sets the bar color.
func (b *BarChart) WithBarColor(c backend.Color) *BarChart {
	b.Common.Foreground = c
	return b
}

// Disabled makes the chart read-only.
func (b *BarChart) Disabled(on bool) *BarChart {
	b.SetAttr(props.Scroll, props.FlagValue(!on))
	return b
}

func (b *BarChart) active() bool {
	return b.Store.GetOr(props.Scroll, props.FlagValue(true)).UnwrapFlag()
}

func (b *BarChart) data() []Bar {
	v, ok := b.Store.Get(props.Dataset)
	if !ok {
		return nil
	}
	payload := v.UnwrapPayload()
	out := make([]Bar, len(payload.Linked))
	for i, pair := range payload.Linked {
		label, value := pair.UnwrapPair()
		out[i] = Bar{Label: label.UnwrapStr(), Value: value.UnwrapU64()}
	}
	return out
}

// Render draws the visible bars from the cursor on, scaling heights to
// the tallest visible bar, with each label under its bar.
func (b *BarChart) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !b.Common.Visible || area.Empty() {
		return
	}
	inner := b.Frame(buf, area)
	if inner.Height < 2 || inner.Width < 1 {
		return
	}

	data := b.data()
	if b.cursor < len(data) {
		data = data[b.cursor:]
	}
	barWidth := max(1, b.Store.GetOr(props.Width, props.LengthValue(3)).UnwrapLength())
	maxBars := inner.Width / (barWidth + 1)
	if limit := b.Store.GetOr(props.Height, props.LengthValue(0)).UnwrapLength(); limit > 0 {
		maxBars = min(maxBars, limit)
	}
	if len(data) > maxBars {
		data = data[:maxBars]
	}

	var peak uint64
	for _, bar := range data {
		peak = max(peak, bar.Value)
	}
	if peak == 0 {
		return
	}

	chartHeight := inner.Height - 1
	style := b.Common.Style()
	sub := buf.Sub(inner)
	for i, bar := range data {
		x := i * (barWidth + 1)
		height := int(bar.Value * uint64(chartHeight) / peak)
		for y := 0; y < height; y++ {
			for dx := 0; dx < barWidth; dx++ {
				sub.Set(x+dx, chartHeight-1-y, '█', style)
			}
		}
		if height > 0 {
			value := fmt.Sprintf("%d", bar.Value)
			if wrap.Width(value) <= barWidth {
				sub.SetString(x, chartHeight-height, value, style.Reverse(true))
			}
		}
		sub.SetString(x, chartHeight, truncate(bar.Label, barWidth+1), style)
	}
}

// Perform pans the window in active mode. Panning reports nothing; the
// chart has no externally meaningful value.
func (b *BarChart) Perform(cmd command.Cmd) command.CmdResult {
	if !b.active() {
		return command.ResultNone
	}
	switch c := cmd.(type) {
	case command.Move:
		switch c.Direction {
		case command.DirLeft:
			if b.cursor > 0 {
				b.cursor--
			}
		case command.DirRight:
			if n := len(b.data()); n > 0 && b.cursor+1 < n {
				b.cursor++
			}
		}
	case command.GoTo:
		if c.Position == command.Begin {
			b.cursor = 0
		} else if n := len(b.data()); n > 0 {
			b.cursor = n - 1
		}
	}
	return command.ResultNone
}
