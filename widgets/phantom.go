package widgets

import (
	"github.com/odvcencio/whisker/runtime"
)

// Phantom is an invisible widget. It stores attributes like any other
// widget but draws nothing and ignores every command; applications use it
// to own global key subscriptions without occupying screen space.
type Phantom struct {
	Base
}

var _ Widget = (*Phantom)(nil)

// NewPhantom creates a phantom widget.
func NewPhantom() *Phantom {
	return &Phantom{Base: NewBase()}
}

// Render draws nothing.
func (p *Phantom) Render(buf *runtime.Buffer, area runtime.Rect) {}
