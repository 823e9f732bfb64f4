package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"modal-edit/app/debug"

	"gopkg.in/ini.v1"
)

//go:embed default.conf
var defaultConf []byte

// colours are written as #rrggbb, so # only starts a comment
// at the beginning of a line
var loadOptions = ini.LoadOptions{IgnoreInlineComment: true}

type Section int

const (
	General Section = iota
	Window
	Theme
	Editor
)

// Map of Section enum values to their string representations
var sections = map[Section]string{
	General: "General",
	Window:  "Window",
	Theme:   "Theme",
	Editor:  "Editor",
}

// String returns the string representation of a Section
func (s Section) String() string {
	return sections[s]
}

type Option int

const (
	Font Option = iota
	FontSize
	Resizable
	Resolution
	Background
	Foreground
	ModeInsert
	ModeCommand
	LineNumbers
	TabWidth
	FileNamePlaceholder
)

// Map of Option enum values to their string names as used in the ini file
var options = map[Option]string{
	Font:                "Font",
	FontSize:            "FontSize",
	Resizable:           "Resizable",
	Resolution:          "Resolution",
	Background:          "Background",
	Foreground:          "Foreground",
	ModeInsert:          "ModeInsert",
	ModeCommand:         "ModeCommand",
	LineNumbers:         "LineNumbers",
	TabWidth:            "TabWidth",
	FileNamePlaceholder: "FileNamePlaceholder",
}

// String returns the string representation of an Option
func (o Option) String() string {
	return options[o]
}

// Value is a single raw config entry
type Value struct {
	Value string
}

func (v Value) GetBool() bool {
	return v.Value == "true"
}

func (v Value) GetInt() (int, error) {
	return strconv.Atoi(strings.TrimSpace(v.Value))
}

// Config holds the built-in defaults and the user's overrides
type Config struct {
	// path to the user settings file
	filePath string

	// parsed default config file
	file *ini.File

	// parsed user settings, empty if there are none
	userFile *ini.File
}

func (c *Config) File() string { return c.filePath }

// New loads the built-in defaults and the settings file at path.
// A missing or unreadable settings file is logged and the defaults
// are used instead. New never returns nil.
func New(path string) *Config {
	config := &Config{
		filePath: path,
		userFile: ini.Empty(),
	}

	ini.PrettyFormat = false
	ini.PrettyEqual = true

	conf, err := ini.LoadSources(loadOptions, defaultConf)
	if err != nil {
		debug.LogErr("Failed to read default config:", err)
		conf = ini.Empty()
	}
	config.file = conf

	if path == "" {
		return config
	}

	userConf, err := load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			debug.LogWarn("No settings file, using defaults:", path)
		} else {
			debug.LogErr("Failed to read settings file:", err)
		}
		return config
	}

	config.userFile = userConf
	return config
}

// load parses a settings file, JSON or ini depending on its extension
func load(path string) (*ini.File, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return fromJSON(data)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	return ini.LoadSources(loadOptions, path)
}

// Value retrieves the value of a configuration option in a given section.
// User settings take precedence over the defaults.
func (c *Config) Value(section Section, option Option) (Value, error) {
	if sect := c.userFile.Section(section.String()); sect != nil {
		if opt := sect.Key(option.String()); opt.String() != "" {
			return Value{opt.String()}, nil
		}
	}

	sect := c.file.Section(section.String())

	if sect == nil {
		return Value{}, fmt.Errorf("No section: %s", section.String())
	}

	if opt := sect.Key(option.String()); opt.String() != "" {
		return Value{opt.String()}, nil
	}

	return Value{}, fmt.Errorf(
		"couldn't find config option `%s` in section `%s`",
		option.String(),
		section.String(),
	)
}

// defaultValue returns the built-in value of an option
func (c *Config) defaultValue(section Section, option Option) Value {
	return Value{c.file.Section(section.String()).Key(option.String()).String()}
}
