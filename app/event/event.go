// Package event defines the abstract input events the editor consumes.
//
// The set of events is closed: only the types in this package implement
// Event, so a type switch over them covers every possible input.
package event

import "fmt"

// Event is a single abstract input event
type Event interface {
	fmt.Stringer
	event()
}

// TextInsert inserts a character at the cursor
type TextInsert struct {
	Char rune
}

type (
	NavigateUp    struct{}
	NavigateDown  struct{}
	NavigateLeft  struct{}
	NavigateRight struct{}
	Backspace     struct{}
	Escape        struct{}
	Return        struct{}

	// Quit stops the run loop, like closing the window.
	// Unlike the :q command it does not terminate the process.
	Quit struct{}
)

func (TextInsert) event()    {}
func (NavigateUp) event()    {}
func (NavigateDown) event()  {}
func (NavigateLeft) event()  {}
func (NavigateRight) event() {}
func (Backspace) event()     {}
func (Escape) event()        {}
func (Return) event()        {}
func (Quit) event()          {}

func (e TextInsert) String() string  { return fmt.Sprintf("TextInsert(%q)", e.Char) }
func (NavigateUp) String() string    { return "NavigateUp" }
func (NavigateDown) String() string  { return "NavigateDown" }
func (NavigateLeft) String() string  { return "NavigateLeft" }
func (NavigateRight) String() string { return "NavigateRight" }
func (Backspace) String() string     { return "Backspace" }
func (Escape) String() string        { return "Escape" }
func (Return) String() string        { return "Return" }
func (Quit) String() string          { return "Quit" }

// FromText expands text into TextInsert events.
// Newlines become Return events, carriage returns are dropped and
// tabs are expanded to tabWidth spaces.
func FromText(text string, tabWidth int) []Event {
	events := make([]Event, 0, len(text))

	for _, r := range text {
		switch r {
		case '\r':
			continue
		case '\n':
			events = append(events, Return{})
		case '\t':
			for range max(tabWidth, 1) {
				events = append(events, TextInsert{Char: ' '})
			}
		default:
			events = append(events, TextInsert{Char: r})
		}
	}

	return events
}
