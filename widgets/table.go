package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// Table is a columnar list of rows with an optional header. When
// scrollable it carries a cursor over the rows.
type Table struct {
	Base
	states CursorState
}

var _ Widget = (*Table)(nil)

// NewTable creates an empty table with default borders.
func NewTable() *Table {
	return &Table{Base: NewBase()}
}

// WithRows sets the table content.
func (t *Table) WithRows(rows props.Table) *Table {
	t.SetAttr(props.Content, props.TableValue(rows))
	return t
}

// WithHeaders sets the header row.
func (t *Table) WithHeaders(headers ...string) *Table {
	spans := make([]props.TextSpan, len(headers))
	for i, h := range headers {
		spans[i] = props.NewTextSpan(h)
	}
	t.SetAttr(props.Text, props.SpansValue(spans))
	return t
}

// WithColumnWidths sets per-column width percentages.
func (t *Table) WithColumnWidths(pcts ...int) *Table {
	vals := make([]props.PropValue, len(pcts))
	for i, p := range pcts {
		vals[i] = props.IntProp(p)
	}
	t.SetAttr(props.Width, props.PayloadValue(props.VecPayload(vals...)))
	return t
}

// WithTitle sets the block title.
func (t *Table) WithTitle(title string, align props.TextAlign) *Table {
	t.SetAttr(props.Title, props.TitleValue(title, align))
	return t
}

// WithBorders sets the block borders.
func (t *Table) WithBorders(b props.BorderProps) *Table {
	t.SetAttr(props.Borders, props.BordersValue(b))
	return t
}

// WithForeground sets the text color.
func (t *Table) WithForeground(c backend.Color) *Table {
	t.Common.Foreground = c
	return t
}

// Scrollable enables the cursor.
func (t *Table) Scrollable(on bool) *Table {
	t.SetAttr(props.Scroll, props.FlagValue(on))
	return t
}

// Rewindable makes single-step moves wrap at the ends.
func (t *Table) Rewindable(on bool) *Table {
	t.Common.Rewind = on
	return t
}

// WithStep sets the scroll step.
func (t *Table) WithStep(step int) *Table {
	t.Common.ScrollStep = step
	return t
}

// WithHighlightedColor sets the cursor row color.
func (t *Table) WithHighlightedColor(c backend.Color) *Table {
	t.SetAttr(props.HighlightedColor, props.ColorValue(c))
	return t
}

func (t *Table) scrollable() bool {
	return t.Store.GetOr(props.Scroll, props.FlagValue(false)).UnwrapFlag()
}

func (t *Table) rows() props.Table {
	return t.Store.GetOr(props.Content, props.TableValue(nil)).UnwrapTable()
}

// SetAttr stores the attribute and re-clamps the cursor against the row
// count.
func (t *Table) SetAttr(attr props.Attr, value props.Value) {
	t.Base.SetAttr(attr, value)
	t.states.SetLength(len(t.rows()))
}

// columnWidths resolves the column cell widths for the content width,
// from the configured percentages or an even split.
func (t *Table) columnWidths(width, cols int) []int {
	if cols == 0 {
		return nil
	}
	out := make([]int, cols)
	if v, ok := t.Store.Get(props.Width); ok {
		pcts := v.UnwrapPayload().UnwrapVec()
		for i := 0; i < cols; i++ {
			if i < len(pcts) {
				out[i] = width * pcts[i].UnwrapInt() / 100
			}
		}
		return out
	}
	for i := range out {
		out[i] = width / cols
	}
	return out
}

// Render draws the header, then the visible rows in columns, keeping the
// cursor row in view and highlighting it when scrollable.
func (t *Table) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !t.Common.Visible || area.Empty() {
		return
	}
	inner := t.Frame(buf, area)
	if inner.Empty() {
		return
	}
	rows := t.rows()
	headers := t.Store.GetOr(props.Text, props.SpansValue(nil)).UnwrapSpans()

	cols := len(headers)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	widths := t.columnWidths(inner.Width, cols)

	sub := buf.Sub(inner)
	y := 0
	if len(headers) > 0 {
		x := 0
		headerStyle := t.Common.Style().Bold(true)
		for i, h := range headers {
			sub.SetString(x, y, truncate(h.Content, widths[i]), headerStyle)
			x += widths[i]
		}
		y++
	}

	bodyHeight := inner.Height - y
	start := 0
	if t.scrollable() && t.states.Index() >= bodyHeight && bodyHeight > 0 {
		start = t.states.Index() - bodyHeight + 1
	}

	highlight := backend.DefaultStyle().
		Foreground(t.Common.Background).
		Background(t.Common.HighlightForeground()).
		Attrs(t.Common.Modifiers)

	for ry := 0; ry < bodyHeight && start+ry < len(rows); ry++ {
		idx := start + ry
		selected := t.scrollable() && idx == t.states.Index()
		x := 0
		for ci, col := range rows[idx] {
			if ci >= len(widths) {
				break
			}
			style := wrap.ResolveStyle(col, &t.Common)
			if selected {
				style = highlight
			}
			sub.SetString(x, y+ry, truncate(col.Content, widths[ci]), style)
			x += widths[ci]
		}
	}
}

// State returns the cursor index when scrollable, NoState otherwise.
func (t *Table) State() command.State {
	if t.scrollable() {
		return command.One(command.Int(t.states.Index()))
	}
	return command.NoState
}

// Perform moves the cursor over the rows.
func (t *Table) Perform(cmd command.Cmd) command.CmdResult {
	prev := t.states.Index()
	switch c := cmd.(type) {
	case command.Move:
		switch c.Direction {
		case command.DirDown:
			t.states.Incr(t.Common.Rewind)
		case command.DirUp:
			t.states.Decr(t.Common.Rewind)
		}
	case command.Scroll:
		switch c.Direction {
		case command.DirDown:
			t.states.ScrollAhead(t.Common.ScrollStep)
		case command.DirUp:
			t.states.ScrollBehind(t.Common.ScrollStep)
		}
	case command.GoTo:
		if c.Position == command.Begin {
			t.states.Begin()
		} else {
			t.states.End()
		}
	default:
		return command.ResultNone
	}
	if t.states.Index() != prev {
		return command.Changed{State: command.One(command.Int(t.states.Index()))}
	}
	return command.ResultNone
}

// truncate clips a string to the given display width, leaving one cell of
// column padding when it fits exactly.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if wrap.Width(s) < width {
		return s
	}
	out := []rune{}
	w := 0
	for _, r := range s {
		rw := wrap.Width(string(r))
		if w+rw >= width {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out)
}
