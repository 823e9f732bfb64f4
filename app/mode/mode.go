package mode

type Mode int

const (
	Insert Mode = iota
	Command
)

var modeName = map[Mode]string{
	Insert:  "i",
	Command: "c",
}

var fullName = map[Mode]string{
	Insert:  "-- INSERT --",
	Command: "",
}

func (m Mode) String() string {
	return modeName[m]
}

// FullString returns the mode indicator as shown in the command bar
func (m Mode) FullString() string {
	return fullName[m]
}

// ModeInstance holds the current mode of an editor.
// It starts in Insert mode.
type ModeInstance struct {
	Current Mode
}

func New() *ModeInstance {
	return &ModeInstance{
		Current: Insert,
	}
}

func (m ModeInstance) GetCurrent() Mode {
	return m.Current
}

// Toggle switches between Insert and Command mode and
// returns the new mode.
func (m *ModeInstance) Toggle() Mode {
	if m.Current == Command {
		m.Current = Insert
	} else {
		m.Current = Command
	}
	return m.Current
}
