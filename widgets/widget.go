// Package widgets provides the widget catalogue: presentation, form,
// data, gauge, and composite widgets sharing one command protocol.
package widgets

import (
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
	"github.com/odvcencio/whisker/wrap"
)

// Widget is the core interface all widgets implement. A widget is a pure
// state machine: commands go in through Perform, a state snapshot comes
// back, and Render draws the current state into the buffer.
type Widget interface {
	// Render draws the widget into its assigned area. Hidden widgets
	// (Display false) draw nothing.
	Render(buf *runtime.Buffer, area runtime.Rect)

	// Query reads back a configuration attribute.
	Query(attr props.Attr) (props.Value, bool)

	// SetAttr stores a configuration attribute. Attributes that affect
	// internal state (content, value) resynchronize it immediately.
	SetAttr(attr props.Attr, value props.Value)

	// State returns a snapshot of the externally meaningful value.
	State() command.State

	// Perform applies an interaction command and reports what changed.
	Perform(cmd command.Cmd) command.CmdResult
}

// Base provides the attribute plumbing shared by every widget.
// Embed it in widget structs to get default implementations; widgets with
// attribute side effects override SetAttr and delegate back.
type Base struct {
	Common props.Common
	Store  *props.Store
}

// NewBase creates the default attribute state.
func NewBase() Base {
	return Base{Common: props.NewCommon(), Store: props.NewStore()}
}

// SetAttr routes recognized shared attributes into the typed Common block
// and everything else into the dynamic store.
func (b *Base) SetAttr(attr props.Attr, value props.Value) {
	if !b.Common.Apply(attr, value) {
		b.Store.Set(attr, value)
	}
}

// Query reads an attribute, preferring the typed block.
func (b *Base) Query(attr props.Attr) (props.Value, bool) {
	if v, ok := b.Common.Lookup(attr); ok {
		return v, true
	}
	return b.Store.Get(attr)
}

// State returns NoState. Widgets with a meaningful value override this.
func (b *Base) State() command.State {
	return command.NoState
}

// Perform ignores all commands. Interactive widgets override this.
func (b *Base) Perform(cmd command.Cmd) command.CmdResult {
	return command.ResultNone
}

// Frame draws the configured borders and title around area and returns
// the inner content area.
func (b *Base) Frame(buf *runtime.Buffer, area runtime.Rect) runtime.Rect {
	bp := b.Common.Borders
	top := bp.Sides.Has(props.BorderTop)
	right := bp.Sides.Has(props.BorderRight)
	bottom := bp.Sides.Has(props.BorderBottom)
	left := bp.Sides.Has(props.BorderLeft)

	if bp.Sides != props.BordersNone {
		buf.DrawBorder(area, runtime.BorderRunes(bp.Runes()), top, right, bottom, left, b.Common.BorderStyle())
	}
	if b.Common.HasTitle() && area.Width > 2 {
		b.drawTitle(buf, area)
	}

	inner := area.Inset(boolToInt(top), boolToInt(right), boolToInt(bottom), boolToInt(left))
	return inner
}

func (b *Base) drawTitle(buf *runtime.Buffer, area runtime.Rect) {
	title := b.Common.Title
	w := wrap.Width(title.Text)
	avail := area.Width - 2
	if w > avail {
		w = avail
	}
	var x int
	switch title.Align {
	case props.AlignCenter:
		x = area.X + (area.Width-w)/2
	case props.AlignRight:
		x = area.X + area.Width - 1 - w
	default:
		x = area.X + 1
	}
	buf.SetString(x, area.Y, title.Text, b.Common.BorderStyle())
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// alignedX returns the x origin for a run of the given width aligned
// within the area.
func alignedX(area runtime.Rect, width int, align props.TextAlign) int {
	switch align {
	case props.AlignCenter:
		return area.X + max(0, (area.Width-width)/2)
	case props.AlignRight:
		return area.X + max(0, area.Width-width)
	default:
		return area.X
	}
}
