// Package command defines the abstract interaction protocol every widget
// implements: the commands an event dispatcher feeds into Perform and the
// results widgets hand back. Commands are input-source independent; the
// host application decides which keys or mouse gestures map to which Cmd.
package command

// Direction is the axis of a Move or Scroll command.
type Direction int

const (
	DirDown Direction = iota
	DirLeft
	DirRight
	DirUp
)

// Position is the target of a GoTo command.
type Position int

const (
	Begin Position = iota
	End
)

// Cmd is a user-interaction command. The set is closed; the Custom variant
// is the escape hatch for application-defined commands.
type Cmd interface {
	isCmd()
}

// Move shifts the cursor by one step.
type Move struct {
	Direction Direction
}

func (Move) isCmd() {}

// Scroll shifts the cursor by the widget's configured scroll step.
type Scroll struct {
	Direction Direction
}

func (Scroll) isCmd() {}

// GoTo jumps the cursor to the begin or end of the collection.
type GoTo struct {
	Position Position
}

func (GoTo) isCmd() {}

// Type inserts a character at the cursor.
type Type struct {
	Ch rune
}

func (Type) isCmd() {}

// Delete removes the character before the cursor.
type Delete struct{}

func (Delete) isCmd() {}

// Cancel aborts the current interaction. For text inputs it deletes the
// character under the cursor; for overlay widgets it closes the overlay
// and rolls back.
type Cancel struct{}

func (Cancel) isCmd() {}

// Toggle flips the highlighted choice's checked state.
type Toggle struct{}

func (Toggle) isCmd() {}

// Submit confirms the widget's current value.
type Submit struct{}

func (Submit) isCmd() {}

// Custom is an application-defined command identified by name.
type Custom struct {
	Name string
}

func (Custom) isCmd() {}
