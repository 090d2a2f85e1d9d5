package widgets

import (
	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
)

// Container owns an ordered set of child widgets and splits its content
// area among them with a constraint layout. Attributes the container does
// not recognize itself are broadcast to every child, as are commands.
type Container struct {
	Base
	children []Widget
}

var _ Widget = (*Container)(nil)

// NewContainer creates an empty container with default borders and a
// vertical layout.
func NewContainer() *Container {
	return &Container{Base: NewBase()}
}

// WithChildren sets the children in registration order.
func (c *Container) WithChildren(children ...Widget) *Container {
	c.children = children
	return c
}

// Add appends a child.
func (c *Container) Add(child Widget) *Container {
	c.children = append(c.children, child)
	return c
}

// Children returns the children in registration order.
func (c *Container) Children() []Widget {
	return c.children
}

// WithLayout sets the area split.
func (c *Container) WithLayout(l props.LayoutSpec) *Container {
	c.SetAttr(props.Layout, props.LayoutValue(l))
	return c
}

// WithTitle sets the block title.
func (c *Container) WithTitle(title string, align props.TextAlign) *Container {
	c.SetAttr(props.Title, props.TitleValue(title, align))
	return c
}

// WithBorders sets the block borders.
func (c *Container) WithBorders(b props.BorderProps) *Container {
	c.SetAttr(props.Borders, props.BordersValue(b))
	return c
}

// SetAttr applies the attributes the container recognizes locally;
// everything else is forwarded to every child in registration order.
func (c *Container) SetAttr(attr props.Attr, value props.Value) {
	switch attr {
	case props.Layout, props.Borders, props.Title, props.Display,
		props.Foreground, props.Background:
		c.Base.SetAttr(attr, value)
	default:
		for _, child := range c.children {
			child.SetAttr(attr, value)
		}
	}
}

// Render draws the block, splits the content area per the layout, and
// renders each child into its chunk. Children without a chunk are not
// drawn.
func (c *Container) Render(buf *runtime.Buffer, area runtime.Rect) {
	if !c.Common.Visible || area.Empty() {
		return
	}
	inner := c.Frame(buf, area)
	if inner.Empty() {
		return
	}
	layout := c.Store.GetOr(props.Layout, props.LayoutValue(props.NewLayout())).UnwrapLayout()
	chunks := SplitArea(layout, inner)
	for i, child := range c.children {
		if i >= len(chunks) {
			break
		}
		child.Render(buf, chunks[i])
	}
}

// Perform broadcasts the command to every child and collects their
// results into a Batch, in registration order.
func (c *Container) Perform(cmd command.Cmd) command.CmdResult {
	results := make([]command.CmdResult, len(c.children))
	for i, child := range c.children {
		results[i] = child.Perform(cmd)
	}
	return command.Batch{Results: results}
}
