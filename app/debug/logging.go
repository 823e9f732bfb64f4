package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const appLogFile = "app.log"
const errorLogFile = "error.log"

type ErrorLvl int

const (
	Info ErrorLvl = iota
	Debug
	Warn
	Error
)

var errLvl = map[ErrorLvl]string{
	Info:  "INFO",
	Debug: "DEBUG",
	Warn:  "WARN",
	Error: "ERROR",
}

func (e ErrorLvl) String() string {
	return errLvl[e]
}

var (
	mu      sync.Mutex
	logDir  string
	verbose bool
)

// SetDir sets the directory the log files are written to.
// An empty dir restores the default, the application config directory.
func SetDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	logDir = dir
}

// SetVerbose enables writing debug level messages
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

func LogInfo(args ...any) {
	logMsg(Info, args...)
}

func LogDebug(args ...any) {
	logMsg(Debug, args...)
}

func LogWarn(args ...any) {
	logMsg(Warn, args...)
}

func LogErr(args ...any) {
	logMsg(Error, args...)
}

func logMsg(level ErrorLvl, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level == Debug && !verbose {
		return
	}

	dir := logDir
	if dir == "" {
		configDir, err := ConfigDir()
		if err != nil {
			return
		}
		dir = configDir
	}

	logFile := appLogFile
	if level == Error {
		logFile = errorLogFile
	}

	// a missing log file must never take the editor down
	file, err := os.OpenFile(
		filepath.Join(dir, logFile),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return
	}
	defer file.Close()

	logger := log.New(file, "", log.LstdFlags)
	logger.Printf(
		"[%s] %s: %s\n",
		time.Now().Format(time.TimeOnly),
		level.String(), strings.TrimSuffix(fmt.Sprintln(args...), "\n"),
	)
}

// ConfigDir returns the directory the log files live in by default.
// It duplicates app.ConfigDir since app itself logs through this package.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appName := "modal-edit"
	if channel := os.Getenv("CHANNEL"); channel != "" {
		appName += "-" + channel
	}

	confDir := filepath.Join(configDir, appName)

	if _, err := os.Stat(confDir); err != nil {
		if err := os.MkdirAll(confDir, 0755); err != nil {
			return "", err
		}
	}

	return confDir, nil
}
