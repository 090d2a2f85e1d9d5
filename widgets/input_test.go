package widgets

import (
	"testing"

	"github.com/odvcencio/whisker/command"
	"github.com/odvcencio/whisker/props"
)

func inputValue(s command.State) string {
	return s.(command.StateOne).Value.Str
}

func typeString(i *Input, s string) {
	for _, ch := range s {
		i.Perform(command.Type{Ch: ch})
	}
}

func TestInputTypeAndState(t *testing.T) {
	i := NewInput()
	typeString(i, "hello")

	if got := inputValue(i.State()); got != "hello" {
		t.Errorf("value = %q, want %q", got, "hello")
	}
}

func TestInputEditing(t *testing.T) {
	i := NewInput()
	typeString(i, "hello")

	if res := i.Perform(command.Delete{}); res == command.ResultNone {
		t.Fatal("backspace on non-empty value reported nothing")
	}
	if got := inputValue(i.State()); got != "hell" {
		t.Fatalf("value after backspace = %q, want %q", got, "hell")
	}

	i.Perform(command.GoTo{Position: command.Begin})
	if res := i.Perform(command.Delete{}); res != command.ResultNone {
		t.Errorf("backspace at begin = %#v, want none", res)
	}
	if res := i.Perform(command.Cancel{}); res == command.ResultNone {
		t.Fatal("delete-forward at begin reported nothing")
	}
	if got := inputValue(i.State()); got != "ell" {
		t.Errorf("value after delete-forward = %q, want %q", got, "ell")
	}

	i.Perform(command.GoTo{Position: command.End})
	if res := i.Perform(command.Cancel{}); res != command.ResultNone {
		t.Errorf("delete-forward at end = %#v, want none", res)
	}
}

func TestInputCursorMovesReportNothing(t *testing.T) {
	i := NewInput()
	typeString(i, "ab")

	if res := i.Perform(command.Move{Direction: command.DirLeft}); res != command.ResultNone {
		t.Errorf("cursor move = %#v, want none", res)
	}
	i.Perform(command.Type{Ch: 'X'})
	if got := inputValue(i.State()); got != "aXb" {
		t.Errorf("insert at cursor = %q, want %q", got, "aXb")
	}
}

func TestInputNumberValidation(t *testing.T) {
	i := NewInput().WithType(props.NumberInput())

	typeString(i, "-12a3")
	if got := inputValue(i.State()); got != "-123" {
		t.Errorf("number value = %q, want %q", got, "-123")
	}
	if res := i.Perform(command.Type{Ch: '-'}); res != command.ResultNone {
		t.Errorf("mid-value sign accepted: %#v", res)
	}
}

func TestInputLengthCap(t *testing.T) {
	i := NewInput().WithLength(3)
	typeString(i, "abcdef")

	if got := inputValue(i.State()); got != "abc" {
		t.Errorf("capped value = %q, want %q", got, "abc")
	}
}

func TestInputValueAttrReplacesBuffer(t *testing.T) {
	i := NewInput()
	typeString(i, "old")

	i.SetAttr(props.ValueAttr, props.StringValue("new"))
	if got := inputValue(i.State()); got != "new" {
		t.Errorf("value = %q, want %q", got, "new")
	}
	if i.states.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", i.states.Cursor())
	}
}

func TestInputSubmit(t *testing.T) {
	i := NewInput()
	typeString(i, "go")

	res, ok := i.Perform(command.Submit{}).(command.Submitted)
	if !ok {
		t.Fatalf("submit result = %#v, want Submitted", res)
	}
	if got := inputValue(res.State); got != "go" {
		t.Errorf("submitted value = %q, want %q", got, "go")
	}
}

func TestInputWideRuneCursor(t *testing.T) {
	i := NewInput()
	typeString(i, "我之")

	if i.states.Cursor() != 2 {
		t.Errorf("cursor index = %d, want 2", i.states.Cursor())
	}
	if got := inputValue(i.State()); got != "我之" {
		t.Errorf("value = %q, want %q", got, "我之")
	}
}
