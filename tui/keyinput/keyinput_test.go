package keyinput_test

import (
	"errors"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"modal-edit/app/event"
	"modal-edit/tui/keyinput"
)

func newInput(clip string, err error) *keyinput.Input {
	ki := keyinput.New(2)
	ki.Clipboard = func() (string, error) {
		return clip, err
	}
	return ki
}

func TestHandleKeyBindings(t *testing.T) {
	ki := newInput("", nil)

	tests := []struct {
		msg  tea.KeyPressMsg
		want event.Event
	}{
		{tea.KeyPressMsg{Code: tea.KeyUp}, event.NavigateUp{}},
		{tea.KeyPressMsg{Code: tea.KeyDown}, event.NavigateDown{}},
		{tea.KeyPressMsg{Code: tea.KeyLeft}, event.NavigateLeft{}},
		{tea.KeyPressMsg{Code: tea.KeyRight}, event.NavigateRight{}},
		{tea.KeyPressMsg{Code: tea.KeyBackspace}, event.Backspace{}},
		{tea.KeyPressMsg{Code: tea.KeyEscape}, event.Escape{}},
		{tea.KeyPressMsg{Code: tea.KeyEnter}, event.Return{}},
		{tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, event.Quit{}},
	}

	for _, tt := range tests {
		got := ki.HandleKey(tt.msg)

		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("%s: expected [%s], got %v", tt.msg.String(), tt.want, got)
		}
	}
}

func TestHandleKeyText(t *testing.T) {
	ki := newInput("", nil)

	got := ki.HandleKey(tea.KeyPressMsg{Code: 'A', Text: "A"})
	if !slices.Equal(got, []event.Event{event.TextInsert{Char: 'A'}}) {
		t.Errorf("Expected TextInsert(A), got %v", got)
	}

	got = ki.HandleKey(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !slices.Equal(got, []event.Event{event.TextInsert{Char: ' '}}) {
		t.Errorf("Expected TextInsert(' '), got %v", got)
	}

	got = ki.HandleKey(tea.KeyPressMsg{Code: tea.KeyF1})
	if len(got) != 0 {
		t.Errorf("Expected no events for an unbound key, got %v", got)
	}
}

func TestHandleKeyTab(t *testing.T) {
	ki := newInput("", nil)

	got := ki.HandleKey(tea.KeyPressMsg{Code: tea.KeyTab})
	want := []event.Event{event.TextInsert{Char: ' '}, event.TextInsert{Char: ' '}}

	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestHandleKeyPaste(t *testing.T) {
	ki := newInput("a\r\nb", nil)

	got := ki.HandleKey(tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl})
	want := []event.Event{
		event.TextInsert{Char: 'a'},
		event.Return{},
		event.TextInsert{Char: 'b'},
	}

	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestHandleKeyPasteFailure(t *testing.T) {
	ki := newInput("ignored", errors.New("no clipboard"))

	if got := ki.HandleKey(tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}); len(got) != 0 {
		t.Errorf("Expected no events, got %v", got)
	}
}

func TestHandleKeyPasteSingleLine(t *testing.T) {
	ki := newInput(":chn report\nsecond line", nil)
	ki.SingleLine = func() bool { return true }

	got := ki.HandleKey(tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl})

	for _, ev := range got {
		if _, ok := ev.(event.Return); ok {
			t.Fatalf("Expected no Return in a single-line paste, got %v", got)
		}
	}
	if len(got) != len(":chn report") {
		t.Errorf("Expected only the first line to be pasted, got %v", got)
	}
}
