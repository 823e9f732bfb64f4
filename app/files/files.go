package files

import (
	"errors"
	"fmt"
	"os"

	"modal-edit/app/debug"
)

// WriteError is returned when a buffer could not be written to Path
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write \"%s\": %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write replaces the contents of the file at path with content.
// The file is created if it does not exist. It returns the number
// of bytes written.
func Write(path string, content string) (n int, err error) {
	if path == "" {
		return 0, &WriteError{Path: path, Err: os.ErrInvalid}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		debug.LogErr(err)
		return 0, &WriteError{Path: path, Err: err}
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			debug.LogErr(cerr)
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	n, err = f.WriteString(content)
	if err != nil {
		debug.LogErr(err)
		return n, &WriteError{Path: path, Err: err}
	}

	return n, nil
}

// Read returns the contents of the file at path.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			debug.LogErr(err)
		}
		return "", err
	}

	return string(b), nil
}

// Exists checks whether a file exists at the given path.
func Exists(path string) bool {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false
	}
	return true
}
