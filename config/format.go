package config

import (
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/precheck/errors"
)

// Formats accepted by Marshal
var Formats = []string{"toml", "json", "yaml"}

// Marshal renders c in the given format.
func Marshal(c *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml", "":
		return toml.Marshal(c)
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(c)
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown format %q", format),
			"use one of: "+strings.Join(Formats, ", "))
	}
}
