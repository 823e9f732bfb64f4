package debug_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modal-edit/app/debug"
)

func readLog(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Could not read log file %s: %v", path, err)
	}
	return string(b)
}

func TestLogLevelsGoToTheirFiles(t *testing.T) {
	dir := t.TempDir()
	debug.SetDir(dir)
	t.Cleanup(func() { debug.SetDir("") })

	debug.LogInfo("started")
	debug.LogErr("could not write", "notes.txt")

	appLog := readLog(t, filepath.Join(dir, "app.log"))
	if !strings.Contains(appLog, "INFO") || !strings.Contains(appLog, "started") {
		t.Errorf("Expected info message in app.log, got %q", appLog)
	}

	errLog := readLog(t, filepath.Join(dir, "error.log"))
	if !strings.Contains(errLog, "ERROR") || !strings.Contains(errLog, "notes.txt") {
		t.Errorf("Expected error message in error.log, got %q", errLog)
	}
}

func TestDebugOnlyWhenVerbose(t *testing.T) {
	dir := t.TempDir()
	debug.SetDir(dir)
	t.Cleanup(func() {
		debug.SetDir("")
		debug.SetVerbose(false)
	})

	debug.LogDebug("hidden")
	if _, err := os.Stat(filepath.Join(dir, "app.log")); err == nil {
		t.Fatal("Expected no log file without verbose logging")
	}

	debug.SetVerbose(true)
	debug.LogDebug("shown")

	if got := readLog(t, filepath.Join(dir, "app.log")); !strings.Contains(got, "shown") {
		t.Errorf("Expected debug message, got %q", got)
	}
}

func TestUnwritableDirIsIgnored(t *testing.T) {
	debug.SetDir(filepath.Join(t.TempDir(), "missing", "dir"))
	t.Cleanup(func() { debug.SetDir("") })

	// must not panic or exit
	debug.LogErr("nowhere to go")
}
