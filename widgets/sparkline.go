package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
)

var sparkBlocks = [...]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline is a read-only bar sketch of a numeric series, one column per
// entry, drawn with eighth-block glyphs.
type Sparkline struct {
	Base
}

var _ Widget = (*Sparkline)(nil)

// NewSparkline creates an empty sparkline with default borders.
func NewSparkline() *Sparkline {
	return &Sparkline{Base: NewBase()}
}

// WithData sets the series.
func (s *Sparkline) WithData(data ...uint64) *Sparkline {
	vals := make([]props.PropValue, len(data))
	for i, d := range data {
		vals[i] = props.U64Prop(d)
	}
	s.SetAttr(props.Dataset, props.PayloadValue(props.VecPayload(vals...)))
	return s
}

// WithMaxEntries caps how many entries are drawn.
func (s *Sparkline) WithMaxEntries(n int) *Sparkline {
	s.SetAttr(props.Width, props.LengthValue(n))
	return s
}

// WithTitle sets the block title.
func (s *Sparkline) WithTitle(title string, align props.TextAlign) *Sparkline {
	s.SetAttr(props.Title, props.TitleValue(title, align))
	return s
}

// WithForeground sets the bar color.
func (s *Sparkline) WithForeground(c backend.Color) *Sparkline {
	s.Common.Foreground = c
	return s
}

func (s *Sparkline) data() []uint64 {
	v, ok := s.Store.Get(props.Dataset)
	if !ok {
		return nil
	}
	vec := v.UnwrapPayload().UnwrapVec()
	out := make([]uint64, len(vec))
	for i, p := range vec {
		out[i] = p.UnwrapU64()
	}
	return out
}

// Render scales the series to the content height and draws one column per
// entry, newest first truncated to the width cap.
func (s *Sparkline) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !s.Common.Visible || area.Empty() {
		return
	}
	inner := s.Frame(buf, area)
	if inner.Empty() {
		return
	}

	data := s.data()
	if limit := s.Store.GetOr(props.Width, props.LengthValue(0)).UnwrapLength(); limit > 0 && len(data) > limit {
		data = data[:limit]
	}
	if len(data) > inner.Width {
		data = data[:inner.Width]
	}

	var peak uint64
	for _, d := range data {
		peak = max(peak, d)
	}
	if peak == 0 {
		return
	}

	style := s.Common.Style()
	sub := buf.Sub(inner)
	for x, d := range data {
		// Total eighths of the column height this value fills.
		eighths := int(d * uint64(inner.Height) * 8 / peak)
		for y := 0; y < inner.Height; y++ {
			row := inner.Height - 1 - y
			remain := eighths - y*8
			switch {
			case remain >= 8:
				sub.Set(x, row, sparkBlocks[8], style)
			case remain > 0:
				sub.Set(x, row, sparkBlocks[remain], style)
			}
		}
	}
}
