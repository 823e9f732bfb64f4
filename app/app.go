package app

import (
	"flag"
	"os"
	"path/filepath"

	"modal-edit/app/debug"
)

var Debug = flag.Bool("debug", false, "Debug mode")
var ShowVersion = flag.Bool("version", false, "Shows the version")
var ConfigPath = flag.String("config", "", "Path to a settings file (.conf, .ini or .json)")

func IsDev() bool {
	return os.Getenv("CHANNEL") == "dev"
}

func Name() string {
	return "modal-edit"
}

// ModuleName returns the name used for the config directory,
// suffixed with the release channel if one is set
func ModuleName() string {
	moduleName := Name()
	if channel := os.Getenv("CHANNEL"); channel != "" {
		moduleName += "-" + channel
	}

	return moduleName
}

// ConfigDir returns the config directory
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		debug.LogErr("Could not get user config directory", err)
		return "", err
	}

	confDir := filepath.Join(configDir, ModuleName())

	if _, err := os.Stat(confDir); err != nil {
		if err := os.MkdirAll(confDir, 0755); err != nil {
			debug.LogErr("Could not create config directory", err)
			return "", err
		}
	}

	return confDir, nil
}

// ConfigFile returns the path to the default settings file
func ConfigFile() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ModuleName()+".conf"), nil
}

func IsFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
