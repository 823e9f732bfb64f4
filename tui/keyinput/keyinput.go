// Package keyinput translates terminal key presses into editor events.
package keyinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/input"

	"modal-edit/app/clipboard"
	"modal-edit/app/debug"
	"modal-edit/app/event"
)

// KeyAction maps a key binding to the event it produces
type KeyAction struct {
	Binding key.Binding
	Event   event.Event
}

// KeyMap holds the bindings that don't insert text
type KeyMap struct {
	Actions []KeyAction
	Tab     key.Binding
	Paste   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Actions: []KeyAction{
			{key.NewBinding(key.WithKeys("up")), event.NavigateUp{}},
			{key.NewBinding(key.WithKeys("down")), event.NavigateDown{}},
			{key.NewBinding(key.WithKeys("left")), event.NavigateLeft{}},
			{key.NewBinding(key.WithKeys("right")), event.NavigateRight{}},
			{key.NewBinding(key.WithKeys("backspace")), event.Backspace{}},
			{key.NewBinding(key.WithKeys("esc")), event.Escape{}},
			{key.NewBinding(key.WithKeys("enter")), event.Return{}},
			{key.NewBinding(key.WithKeys("ctrl+c")), event.Quit{}},
		},
		Tab:   key.NewBinding(key.WithKeys("tab")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v")),
	}
}

type Input struct {
	KeyMap KeyMap

	// number of spaces a tab is expanded to
	TabWidth int

	// source of the text inserted on ctrl+v
	Clipboard func() (string, error)

	// SingleLine reports whether input currently goes to a single-line
	// field. Pastes are then cut at the first newline.
	SingleLine func() bool
}

func New(tabWidth int) *Input {
	return &Input{
		KeyMap:    DefaultKeyMap(),
		TabWidth:  tabWidth,
		Clipboard: clipboard.Read,
	}
}

// HandleKey returns the events a key press stands for.
// Keys without a binding insert their text, if they have any.
func (ki *Input) HandleKey(msg tea.KeyPressMsg) []event.Event {
	for _, action := range ki.KeyMap.Actions {
		if key.Matches(msg, action.Binding) {
			return []event.Event{action.Event}
		}
	}

	if key.Matches(msg, ki.KeyMap.Tab) {
		// soft tabs
		tab := strings.Repeat(string(input.KeySpace), ki.TabWidth)
		return event.FromText(tab, ki.TabWidth)
	}

	if key.Matches(msg, ki.KeyMap.Paste) {
		return ki.paste()
	}

	return event.FromText(msg.Key().Text, ki.TabWidth)
}

func (ki *Input) paste() []event.Event {
	if ki.Clipboard == nil {
		return nil
	}

	text, err := ki.Clipboard()
	if err != nil {
		debug.LogWarn("paste:", err)
		return nil
	}

	if ki.SingleLine != nil && ki.SingleLine() {
		text, _, _ = strings.Cut(text, "\n")
	}

	return event.FromText(text, ki.TabWidth)
}
