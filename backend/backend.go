// Package backend defines the terminal backend boundary for whisker.
// Widgets never talk to a terminal directly; they draw into a cell buffer
// which is flushed through this interface. The abstraction allows swapping
// between tcell (real terminals) and a simulation backend for tests.
package backend

import "github.com/odvcencio/whisker/terminal"

// Backend is the terminal abstraction layer.
// Implementations own terminal I/O, input events, and screen output.
type Backend interface {
	// Init initializes the backend (enters alt screen, raw mode, etc).
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets a cell at (x, y). comb carries combining runes and
	// may be nil.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show synchronizes the internal buffer to the terminal.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// SetCursorPos moves (and shows) the terminal cursor.
	SetCursorPos(x, y int)

	// PollEvent blocks until an event is available. Returns nil when the
	// backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the queue. Used by tests and timers.
	PostEvent(ev terminal.Event) error

	// Sync forces a full redraw on the next Show.
	Sync()
}

// RenderTarget is the subset of Backend needed to blit cells.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}
