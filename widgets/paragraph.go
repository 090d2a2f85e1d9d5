package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// Paragraph is a bordered multi-line read-only text widget. Its runs are
// laid out by the wrap engine into lines bounded by the content width.
type Paragraph struct {
	Base
}

var _ Widget = (*Paragraph)(nil)

// NewParagraph creates an empty paragraph with default borders.
func NewParagraph() *Paragraph {
	return &Paragraph{Base: NewBase()}
}

// WithText sets the styled runs.
func (p *Paragraph) WithText(spans ...props.TextSpan) *Paragraph {
	p.SetAttr(props.Text, props.SpansValue(spans))
	return p
}

// WithTitle sets the block title.
func (p *Paragraph) WithTitle(title string, align props.TextAlign) *Paragraph {
	p.SetAttr(props.Title, props.TitleValue(title, align))
	return p
}

// WithBorders sets the block borders.
func (p *Paragraph) WithBorders(b props.BorderProps) *Paragraph {
	p.SetAttr(props.Borders, props.BordersValue(b))
	return p
}

// WithForeground sets the text color.
func (p *Paragraph) WithForeground(c backend.Color) *Paragraph {
	p.Common.Foreground = c
	return p
}

// WithBackground sets the background color.
func (p *Paragraph) WithBackground(c backend.Color) *Paragraph {
	p.Common.Background = c
	return p
}

// WithAlignment sets the per-line text alignment.
func (p *Paragraph) WithAlignment(a props.TextAlign) *Paragraph {
	p.SetAttr(props.Alignment, props.AlignValue(a))
	return p
}

// Render wraps the runs into the content area and draws them top down.
// Lines past the bottom edge are clipped.
func (p *Paragraph) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !p.Common.Visible || area.Empty() {
		return
	}
	inner := p.Frame(buf, area)
	if inner.Empty() {
		return
	}
	spans := p.Store.GetOr(props.Text, props.SpansValue(nil)).UnwrapSpans()
	align := p.Store.GetOr(props.Alignment, props.AlignValue(props.AlignLeft)).UnwrapAlignment()

	sub := buf.Sub(inner)
	for y, line := range wrap.Spans(spans, inner.Width, &p.Common) {
		if y >= inner.Height {
			break
		}
		lw := 0
		for _, frag := range line {
			lw += wrap.Width(frag.Content)
		}
		x := alignedX(runtime.Rect{Width: inner.Width}, lw, align)
		for _, frag := range line {
			sub.SetString(x, y, frag.Content, frag.Style)
			x += wrap.Width(frag.Content)
		}
	}
}
