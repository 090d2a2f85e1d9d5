package widgets

import (
	"github.com/odvcencio/whisker/props"
	"github.com/odvcencio/whisker/runtime"
)

// SplitArea divides an area into chunks along the layout's axis, one chunk
// per constraint in order. Fixed constraints (Length, Percentage, Ratio)
// take their size first; Min and Max constraints share the leftover, Min
// taking at least its value and Max at most. Chunks that no longer fit are
// clipped to zero size rather than overflowing the area.
func SplitArea(l props.LayoutSpec, area runtime.Rect) []runtime.Rect {
	inner := area.Shrink(l.Margin)
	if len(l.Constraints) == 0 || inner.Empty() {
		return nil
	}

	total := inner.Height
	if l.Direction == props.SplitHorizontal {
		total = inner.Width
	}

	sizes := make([]int, len(l.Constraints))
	flex := make([]int, 0, len(l.Constraints))
	used := 0
	for i, c := range l.Constraints {
		switch c.Kind {
		case props.ConstraintLength:
			sizes[i] = c.Value
		case props.ConstraintPercentage:
			sizes[i] = total * c.Value / 100
		case props.ConstraintRatio:
			if c.Den > 0 {
				sizes[i] = total * c.Num / c.Den
			}
		case props.ConstraintMin:
			sizes[i] = c.Value
			flex = append(flex, i)
		case props.ConstraintMax:
			flex = append(flex, i)
		}
		used += sizes[i]
	}

	// Distribute leftover space among the flexible chunks.
	if leftover := total - used; leftover > 0 && len(flex) > 0 {
		share := leftover / len(flex)
		extra := leftover % len(flex)
		for n, i := range flex {
			grow := share
			if n < extra {
				grow++
			}
			c := l.Constraints[i]
			if c.Kind == props.ConstraintMax {
				sizes[i] = min(sizes[i]+grow, c.Value)
			} else {
				sizes[i] += grow
			}
		}
	}

	chunks := make([]runtime.Rect, len(sizes))
	offset := 0
	for i, size := range sizes {
		size = max(0, min(size, total-offset))
		if l.Direction == props.SplitHorizontal {
			chunks[i] = runtime.Rect{
				X:      inner.X + offset,
				Y:      inner.Y,
				Width:  size,
				Height: inner.Height,
			}
		} else {
			chunks[i] = runtime.Rect{
				X:      inner.X,
				Y:      inner.Y + offset,
				Width:  inner.Width,
				Height: size,
			}
		}
		offset += size
	}
	return chunks
}
