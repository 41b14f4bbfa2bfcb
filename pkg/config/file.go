package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadFile applies the defaults stored in a JSON file to cfg. Recognized
// keys, all optional:
//
//	{
//	  "mode":     "hex",
//	  "value":    "0xff",
//	  "max_line": 64,
//	  "color":    "never",
//	  "trace":    false,
//	  "verbose":  false
//	}
//
// "value" may be a JSON number or a string holding any rax literal.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigFile, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: %s: malformed JSON", ErrConfigFile, path)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("%w: %s: top level must be an object", ErrConfigFile, path)
	}

	if v := root.Get("mode"); v.Exists() {
		mode, err := ParseMode(v.String())
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrConfigFile, path, err)
		}
		cfg.Mode = mode
	}

	if v := root.Get("value"); v.Exists() {
		text := v.Raw
		if v.Type == gjson.String {
			text = v.String()
		}
		value, err := ParseInitial(text)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrConfigFile, path, err)
		}
		cfg.Value = value
	}

	if v := root.Get("max_line"); v.Exists() {
		if v.Type != gjson.Number || v.Int() <= 0 {
			return fmt.Errorf("%w: %s: max_line must be a positive number", ErrConfigFile, path)
		}
		cfg.MaxLine = int(v.Int())
	}

	if v := root.Get("color"); v.Exists() {
		color, err := ParseColor(v.String())
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrConfigFile, path, err)
		}
		cfg.Color = color
	}

	if v := root.Get("trace"); v.Exists() {
		cfg.Trace = v.Bool()
	}
	if v := root.Get("verbose"); v.Exists() {
		cfg.Verbose = v.Bool()
	}

	return nil
}
