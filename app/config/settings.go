package config

import (
	"fmt"
	"strconv"
	"strings"

	"modal-edit/app/debug"
)

// Settings is the resolved, read-only configuration handed to the
// renderer. Colours are normalised to "#rrggbb".
type Settings struct {
	Font      string
	FontSize  int
	Resizable bool

	// window size in pixels, width and height
	Resolution [2]int

	Background  string
	Foreground  string
	ModeInsert  string
	ModeCommand string

	LineNumbers bool
	TabWidth    int

	FileNamePlaceholder string
}

// Settings resolves all options. Invalid user values are logged
// and replaced by their defaults.
func (c *Config) Settings() Settings {
	return Settings{
		Font:                c.stringValue(Window, Font),
		FontSize:            c.intValue(Window, FontSize),
		Resizable:           c.boolValue(Window, Resizable),
		Resolution:          c.resolution(),
		Background:          c.colourValue(Theme, Background),
		Foreground:          c.colourValue(Theme, Foreground),
		ModeInsert:          c.colourValue(Theme, ModeInsert),
		ModeCommand:         c.colourValue(Theme, ModeCommand),
		LineNumbers:         c.boolValue(Editor, LineNumbers),
		TabWidth:            c.intValue(Editor, TabWidth),
		FileNamePlaceholder: c.stringValue(General, FileNamePlaceholder),
	}
}

func (c *Config) stringValue(section Section, option Option) string {
	v, err := c.Value(section, option)
	if err != nil {
		debug.LogWarn(err)
	}
	return v.Value
}

func (c *Config) boolValue(section Section, option Option) bool {
	v, _ := c.Value(section, option)

	switch strings.ToLower(strings.TrimSpace(v.Value)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}

	debug.LogWarn("invalid boolean", option.String(), v.Value)
	return c.defaultValue(section, option).GetBool()
}

func (c *Config) intValue(section Section, option Option) int {
	v, _ := c.Value(section, option)

	n, err := v.GetInt()
	if err != nil || n <= 0 {
		debug.LogWarn("invalid number", option.String(), v.Value)
		n, _ = c.defaultValue(section, option).GetInt()
	}

	return n
}

func (c *Config) colourValue(section Section, option Option) string {
	v, _ := c.Value(section, option)

	hex, err := ParseColour(v.Value)
	if err != nil {
		debug.LogWarn(option.String(), err)
		hex, _ = ParseColour(c.defaultValue(section, option).Value)
	}

	return hex
}

func (c *Config) resolution() [2]int {
	v, _ := c.Value(Window, Resolution)

	res, err := parseResolution(v.Value)
	if err != nil {
		debug.LogWarn(err)
		res, _ = parseResolution(c.defaultValue(Window, Resolution).Value)
	}

	return res
}

// ParseColour accepts "#rrggbb", "#rgb" or "r,g,b" and returns
// the colour as "#rrggbb"
func ParseColour(s string) (string, error) {
	s = strings.TrimSpace(s)

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return "", fmt.Errorf("invalid colour %q", s)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", fmt.Errorf("invalid colour %q", s)
		}
		return "#" + strings.ToLower(hex), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid colour %q", s)
	}

	var rgb [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return "", fmt.Errorf("invalid colour %q", s)
		}
		rgb[i] = n
	}

	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), nil
}

func parseResolution(s string) ([2]int, error) {
	var res [2]int

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x'
	})
	if len(parts) != 2 {
		return res, fmt.Errorf("invalid resolution %q", s)
	}

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return res, fmt.Errorf("invalid resolution %q", s)
		}
		res[i] = n
	}

	return res, nil
}
