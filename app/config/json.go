package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/ini.v1"

	"modal-edit/app/debug"
)

type entry struct {
	section Section
	option  Option
}

// jsonKeys maps the keys of a JSON settings file to config options
var jsonKeys = map[string]entry{
	"font":                  {Window, Font},
	"font-size":             {Window, FontSize},
	"window-resizable":      {Window, Resizable},
	"window-resolution":     {Window, Resolution},
	"color-background":      {Theme, Background},
	"color-foreground":      {Theme, Foreground},
	"color-mode-insert":     {Theme, ModeInsert},
	"color-mode-command":    {Theme, ModeCommand},
	"line-numbers":          {Editor, LineNumbers},
	"tab-width":             {Editor, TabWidth},
	"file-name-placeholder": {General, FileNamePlaceholder},
}

// fromJSON converts a JSON settings object into ini sections.
// Comments and trailing commas are allowed, unknown keys are skipped.
func fromJSON(data []byte) (*ini.File, error) {
	data, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	file := ini.Empty()

	for name, v := range raw {
		e, ok := jsonKeys[name]
		if !ok {
			debug.LogWarn("unknown setting", name)
			continue
		}

		value, err := jsonValue(v)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}

		file.Section(e.section.String()).Key(e.option.String()).SetValue(value)
	}

	return file, nil
}

// jsonValue formats a decoded JSON value the way it is written in
// an ini file. Arrays like [24, 24, 24] become "24,24,24".
func jsonValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, err := jsonValue(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	case nil:
		return "", nil
	}

	return "", fmt.Errorf("unsupported value %v", v)
}
