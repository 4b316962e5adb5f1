package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings. Command line flags override the values
// loaded from the file.
type Config struct {
	// Level is a color level: auto, none, basic, ansi256, truecolor or a
	// digit 0-3.
	Level string `yaml:"level"`
	// Encoding of the input, see sequences.Encodings.
	Encoding  string `yaml:"encoding"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// Escape renders control characters of printed sequences as \xNN.
	Escape bool `yaml:"escape"`
}

func Default() *Config {
	return &Config{
		Level:     "auto",
		Encoding:  "utf-8",
		LogLevel:  "warn",
		LogFormat: "text",
		Escape:    false,
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return cfg, nil
}
