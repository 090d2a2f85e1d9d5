// Package wrap lays styled text runs out into width-bounded lines.
// It is the text engine behind the paragraph, list, and table widgets.
package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rivo/uniseg"

	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/props"
)

// Fragment is a piece of one output line carrying a resolved style.
type Fragment struct {
	Content string
	Style   backend.Style
}

// Line is one display row of fragments.
type Line []Fragment

// Width returns the display width of a string in terminal cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// ResolveStyle merges a span's own style with the widget defaults: a span
// channel left at its reset value inherits the widget's foreground,
// background, or modifiers.
func ResolveStyle(span props.TextSpan, c *props.Common) backend.Style {
	fg := span.Fg
	if fg == backend.ColorDefault {
		fg = c.Foreground
	}
	bg := span.Bg
	if bg == backend.ColorDefault {
		bg = c.Background
	}
	mod := span.Modifiers
	if mod == 0 {
		mod = c.Modifiers
	}
	return backend.DefaultStyle().Foreground(fg).Background(bg).Attrs(mod)
}

// Spans greedily packs styled runs into lines no wider than width. Runs are
// kept whole when they fit; a run wider than the whole line is word-wrapped
// and its pieces flow into the surrounding lines. Styles resolve through
// ResolveStyle. A non-positive width yields no lines.
func Spans(spans []props.TextSpan, width int, c *props.Common) []Line {
	if width <= 0 {
		return nil
	}
	res := make([]Line, 0, len(spans))
	lineWidth := 0
	var line Line
	for _, span := range spans {
		style := ResolveStyle(span, c)
		w := Width(span.Content)
		if lineWidth+w > width {
			if w > width {
				for _, chunk := range wrapContent(span.Content, width) {
					cw := Width(chunk)
					if lineWidth+cw > width {
						res = append(res, line)
						lineWidth = 0
						line = nil
					}
					lineWidth += cw
					line = append(line, Fragment{Content: chunk, Style: style})
				}
				continue
			}
			res = append(res, line)
			lineWidth = 0
			line = nil
		}
		lineWidth += w
		line = append(line, Fragment{Content: span.Content, Style: style})
	}
	if len(line) > 0 {
		res = append(res, line)
	}
	return res
}

// wrapContent word-wraps a single run to the given width. Words wider than
// a whole line are hard-split on grapheme boundaries so every returned
// chunk fits.
func wrapContent(content string, width int) []string {
	var chunks []string
	for _, ln := range strings.Split(wordwrap.String(content, width), "\n") {
		if Width(ln) <= width {
			chunks = append(chunks, ln)
			continue
		}
		chunks = append(chunks, hardSplit(ln, width)...)
	}
	return chunks
}

// hardSplit cuts a string into width-bounded pieces without breaking
// grapheme clusters.
func hardSplit(s string, width int) []string {
	var out []string
	var sb strings.Builder
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		cw := Width(cluster)
		if w+cw > width && sb.Len() > 0 {
			out = append(out, sb.String())
			sb.Reset()
			w = 0
		}
		sb.WriteString(cluster)
		w += cw
	}
	if sb.Len() > 0 {
		out = append(out, sb.String())
	}
	return out
}

// CursorPosition returns the display column of a cursor placed after the
// given characters. Wide characters advance the cursor by two cells.
func CursorPosition(chars []rune) int {
	return runewidth.StringWidth(string(chars))
}
