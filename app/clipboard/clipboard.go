// Package clipboard reads text from the system clipboard.
// The backend is chosen once by Init: the native X11/macOS/Windows
// clipboard, wl-paste on wayland, or xclip/xsel/pbpaste as a fallback.
package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"

	"modal-edit/app/debug"
)

type backend int

const (
	none backend = iota
	native
	wayland
	command
)

var backendName = map[backend]string{
	none:    "none",
	native:  "native",
	wayland: "wayland",
	command: "command",
}

func (b backend) String() string {
	return backendName[b]
}

var ErrUnavailable = errors.New("no clipboard backend available")

var (
	mu      sync.Mutex
	current = none
	ready   = false
)

// Init detects the clipboard backend. Calling it more than once
// has no effect.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if ready {
		return nil
	}

	current = detect(runtime.GOOS, os.Getenv("DISPLAY"), os.Getenv("WAYLAND_DISPLAY"))

	if current == native {
		if err := clipboard.Init(); err != nil {
			debug.LogWarn("native clipboard unavailable:", err)
			current = command
		}
	}

	if current == command && atotto.Unsupported {
		current = none
	}

	ready = true
	debug.LogDebug("clipboard backend:", current.String())

	if current == none {
		return ErrUnavailable
	}
	return nil
}

func detect(goos, display, waylandDisplay string) backend {
	switch goos {
	case "windows", "darwin":
		return native

	case "linux", "freebsd", "openbsd", "netbsd":
		switch {
		case waylandDisplay != "":
			return wayland
		case display != "":
			return native
		}
	}

	return command
}

// Read returns the text currently held by the clipboard
func Read() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}

	mu.Lock()
	b := current
	mu.Unlock()

	switch b {
	case native:
		return string(clipboard.Read(clipboard.FmtText)), nil

	case wayland:
		out, err := exec.Command("wl-paste", "--no-newline").Output()
		if err != nil {
			return "", err
		}
		return string(out), nil

	case command:
		return atotto.ReadAll()
	}

	return "", ErrUnavailable
}
