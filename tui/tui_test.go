package tui_test

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"modal-edit/app/config"
	"modal-edit/app/debug"
	"modal-edit/app/editor"
	"modal-edit/tui"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "modal-edit-log")
	if err == nil {
		debug.SetDir(dir)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newModel(opts ...editor.Option) tui.Model {
	return tui.New(config.New("").Settings(), opts...)
}

func update(t *testing.T, m tui.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()

	model, cmd := m.Update(msg)
	next, ok := model.(tui.Model)
	if !ok {
		t.Fatalf("Expected tui.Model, got %T", model)
	}

	return next, cmd
}

func press(t *testing.T, m tui.Model, keys ...tea.KeyPressMsg) (tui.Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = update(t, m, k)
	}
	return m, cmd
}

func text(s string) []tea.KeyPressMsg {
	keys := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return keys
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPlaceholderFileName(t *testing.T) {
	m := newModel()

	if m.Editor().FileName() != "untitled" {
		t.Errorf("Expected placeholder file name, got %q", m.Editor().FileName())
	}

	m = newModel(editor.WithFileName("notes.txt"))
	if m.Editor().FileName() != "notes.txt" {
		t.Errorf("Expected notes.txt, got %q", m.Editor().FileName())
	}
	if m.Title() != "modal-edit - notes.txt" {
		t.Errorf("Unexpected title %q", m.Title())
	}
}

func TestKeysReachEditor(t *testing.T) {
	m := newModel()

	m, cmd := press(t, m, text("hi")...)
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd != nil {
		t.Error("Expected no command while typing")
	}
	if got := m.Editor().Lines(); len(got) != 2 || got[0] != "hi" || got[1] != "" {
		t.Errorf("Expected [hi ''], got %q", got)
	}
}

func TestQuitCommandRequestsExit(t *testing.T) {
	m := newModel(editor.WithLines("unsaved"))

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m, _ = press(t, m, text(":q")...)
	m, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if !isQuit(cmd) {
		t.Fatal("Expected the program to quit")
	}

	code, ok := m.ExitCode()
	if !ok || code != 0 {
		t.Errorf("Expected exit code 0 to be requested, got %d, %v", code, ok)
	}
}

func TestCtrlCQuitsWithoutExit(t *testing.T) {
	m := newModel()

	m, cmd := press(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})

	if !isQuit(cmd) {
		t.Fatal("Expected the program to quit")
	}
	if _, ok := m.ExitCode(); ok {
		t.Error("Expected no exit to be requested")
	}
}

func resize(t *testing.T, m tui.Model, width, height int) tui.Model {
	t.Helper()

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	if cmd == nil {
		t.Fatal("Expected a layout command")
	}

	m, _ = update(t, m, cmd())
	return m
}

func TestContent(t *testing.T) {
	m := newModel(editor.WithLines("hello", "world"), editor.WithFileName("notes.txt"))
	m = resize(t, m, 60, 6)

	content := ansi.Strip(m.Content())

	for _, want := range []string{"hello", "world", "-- INSERT --", "notes.txt", "1:1"} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected %q in\n%s", want, content)
		}
	}
}

func TestContentCommandMode(t *testing.T) {
	m := newModel(editor.WithLines("hello"))
	m = resize(t, m, 60, 6)

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m, _ = press(t, m, text(":chn")...)

	content := ansi.Strip(m.Content())

	if strings.Contains(content, "-- INSERT --") {
		t.Errorf("Expected no insert indicator in command mode:\n%s", content)
	}
	if !strings.Contains(content, ":chn") {
		t.Errorf("Expected the command line in\n%s", content)
	}
}

func TestContentShowsStatus(t *testing.T) {
	m := newModel()
	m = resize(t, m, 80, 6)

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m, _ = press(t, m, text(":chn report")...)
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	content := ansi.Strip(m.Content())

	if !strings.Contains(content, `File name set to "report"`) {
		t.Errorf("Expected the status message in\n%s", content)
	}
}

func TestWideCharactersScrollToCursor(t *testing.T) {
	m := newModel(editor.WithLines(strings.Repeat("日", 9) + "X"))
	m = resize(t, m, 20, 6)

	for range 10 {
		m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	}

	if m.Editor().Scroll().Col == 0 {
		t.Errorf("Expected the view to scroll, got %v", m.Editor().Scroll())
	}

	content := ansi.Strip(m.Content())
	if !strings.Contains(content, "X") {
		t.Errorf("Expected the end of the line to be visible in\n%s", content)
	}
}
