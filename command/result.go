package command

// CmdResult is what Perform returns to the dispatcher.
type CmdResult interface {
	isCmdResult()
}

type noneResult struct{}

func (noneResult) isCmdResult() {}

// ResultNone is returned when a command changed nothing. Performing the
// same command twice with no state change must yield ResultNone the
// second time.
var ResultNone CmdResult = noneResult{}

// Changed reports that the widget's state changed, carrying a snapshot.
type Changed struct {
	State State
}

func (Changed) isCmdResult() {}

// Submitted reports that the user confirmed the widget's value.
type Submitted struct {
	State State
}

func (Submitted) isCmdResult() {}

// Batch is the ordered collection of results from a broadcast command,
// one entry per child in registration order.
type Batch struct {
	Results []CmdResult
}

func (Batch) isCmdResult() {}
