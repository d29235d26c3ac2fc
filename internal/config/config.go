package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the top-level editor service configuration.
type Config struct {
	Version int    `yaml:"version"`
	Server  Server `yaml:"server"`
	Submit  Submit `yaml:"submit"`
	Editor  Editor `yaml:"editor"`
}

// Server configures the HTTP listener.
type Server struct {
	Addr string `yaml:"addr"`
}

// Submit configures the downstream form submission endpoint.
type Submit struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Editor configures session defaults.
type Editor struct {
	SeedPath    string `yaml:"seed_path"`
	DefaultView string `yaml:"default_view"`
}

// Parse decodes a YAML config. Unknown fields and multiple documents are
// rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
