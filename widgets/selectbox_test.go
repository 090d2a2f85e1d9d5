package widgets

import (
	"testing"

	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
)

func TestSelectOpenCancelRestores(t *testing.T) {
	s := NewSelect().WithChoices("a", "b", "c").WithValue(1)

	if res := s.Perform(command.Submit{}); res != command.ResultNone {
		t.Fatalf("open result = %#v, want none", res)
	}
	if s.State() != command.NoState {
		t.Fatalf("state while open = %#v, want none", s.State())
	}

	s.Perform(command.Move{Direction: command.DirDown}) // 2
	res, ok := s.Perform(command.Cancel{}).(command.Changed)
	if !ok {
		t.Fatalf("cancel result = %#v, want Changed", res)
	}
	if got := res.State.(command.StateOne).Value.Int; got != 1 {
		t.Errorf("choice after cancel = %d, want restored 1", got)
	}
	if s.states.IsOpen() {
		t.Error("overlay still open after cancel")
	}
}

func TestSelectSubmitCommits(t *testing.T) {
	s := NewSelect().WithChoices("a", "b", "c")

	s.Perform(command.Submit{})
	s.Perform(command.Move{Direction: command.DirDown})
	s.Perform(command.Move{Direction: command.DirDown})

	res, ok := s.Perform(command.Submit{}).(command.Submitted)
	if !ok {
		t.Fatalf("commit result = %#v, want Submitted", res)
	}
	if got := res.State.(command.StateOne).Value.Int; got != 2 {
		t.Errorf("committed choice = %d, want 2", got)
	}
	if s.states.IsOpen() {
		t.Error("overlay still open after commit")
	}
}

func TestSelectCancelWhileClosedIsNoOp(t *testing.T) {
	s := NewSelect().WithChoices("a", "b", "c")

	s.Perform(command.Submit{})
	s.Perform(command.Move{Direction: command.DirDown})
	s.Perform(command.Submit{}) // commit 1

	if res := s.Perform(command.Cancel{}); res != command.ResultNone {
		t.Errorf("closed cancel = %#v, want none", res)
	}
	if got := s.State().(command.StateOne).Value.Int; got != 1 {
		t.Errorf("choice after closed cancel = %d, want 1", got)
	}
}

func TestSelectClosedIgnoresMoves(t *testing.T) {
	s := NewSelect().WithChoices("a", "b", "c")

	if res := s.Perform(command.Move{Direction: command.DirDown}); res != command.ResultNone {
		t.Errorf("closed move = %#v, want none", res)
	}
	if got := s.State().(command.StateOne).Value.Int; got != 0 {
		t.Errorf("choice after closed move = %d, want 0", got)
	}
}

func TestSelectBlurClosesWithoutRestore(t *testing.T) {
	s := NewSelect().WithChoices("a", "b", "c")

	s.Perform(command.Submit{})
	s.Perform(command.Move{Direction: command.DirDown})

	s.SetAttr(props.Focus, props.FlagValue(false))

	if s.states.IsOpen() {
		t.Fatal("overlay still open after blur")
	}
	if got := s.State().(command.StateOne).Value.Int; got != 1 {
		t.Errorf("choice after blur = %d, want kept 1", got)
	}
}
