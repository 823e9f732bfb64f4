package files_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"modal-edit/app/debug"
	"modal-edit/app/files"
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

func TestWriteCreatesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")

	if files.Exists(path) {
		t.Fatal("File should not exist yet")
	}

	n, err := files.Write(path, "a much longer first version")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != len("a much longer first version") {
		t.Errorf("Expected %d bytes written, got %d", len("a much longer first version"), n)
	}

	if _, err := files.Write(path, "line1\nline2"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := files.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "line1\nline2" {
		t.Errorf("Expected file to be overwritten, got %q", content)
	}
}

func TestWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "notes.txt")

	_, err := files.Write(path, "content")
	if err == nil {
		t.Fatal("Expected an error writing into a missing directory")
	}

	var writeErr *files.WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Expected a WriteError, got %T", err)
	}
	if writeErr.Path != path {
		t.Errorf("Expected path %s, got %s", path, writeErr.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected the cause to be kept, got %v", writeErr.Err)
	}
}

func TestWriteEmptyPath(t *testing.T) {
	if _, err := files.Write("", "content"); err == nil {
		t.Error("Expected an error for an empty path")
	}
}

func TestReadMissing(t *testing.T) {
	_, err := files.Read(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}
