// Package config loads gocalc settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
	"go.creack.net/gocalc/repl"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config models the config file contents.
//
//	mode: variables        # or basic
//	format: "%g"
//	keep_going: false
//	color: auto            # always, never
//	variables:
//	  pi: 3.141592653589793
type Config struct {
	Mode      string             `yaml:"mode"`
	Format    string             `yaml:"format"`
	KeepGoing bool               `yaml:"keep_going"`
	Color     string             `yaml:"color"`
	Variables map[string]float64 `yaml:"variables"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Mode:      parser.ModeVariables.String(),
		Format:    "%g",
		Color:     ColorAuto,
		Variables: map[string]float64{},
	}
}

// Load reads the config file at path. Unset keys keep their default value.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: empty path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if cfg.Variables == nil {
		cfg.Variables = map[string]float64{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings, the format and variable names.
func (c *Config) Validate() error {
	mode, err := c.ParserMode()
	if err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, want %s, %s or %s", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.Format == "" {
		return errors.New("empty format")
	}
	if err := repl.CheckFormat(c.Format); err != nil {
		return err
	}
	if mode == parser.ModeBasic && len(c.Variables) > 0 {
		return fmt.Errorf("variables given in %s mode", mode)
	}
	for name := range c.Variables {
		if !IsIdentifier(name) {
			return fmt.Errorf("invalid variable name %q", name)
		}
	}
	return nil
}

// ParserMode returns the grammar variant named by Mode.
func (c *Config) ParserMode() (parser.Mode, error) {
	switch c.Mode {
	case parser.ModeBasic.String():
		return parser.ModeBasic, nil
	case parser.ModeVariables.String():
		return parser.ModeVariables, nil
	}
	return 0, fmt.Errorf("invalid mode %q, want %s or %s", c.Mode, parser.ModeBasic, parser.ModeVariables)
}

// ParseDefinition parses a "name=value" variable definition.
func ParseDefinition(s string) (string, float64, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	name, value = strings.TrimSpace(name), strings.TrimSpace(value)
	if !IsIdentifier(name) {
		return "", 0, fmt.Errorf("invalid variable name %q", name)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", 0, fmt.Errorf("variable %q: %w", name, err)
	}
	return name, v, nil
}

// IsIdentifier reports whether name lexes as a single identifier.
func IsIdentifier(name string) bool {
	tok := lexer.New(name).NextToken()
	return tok.Type == lexer.TokIdentifier && tok.Value == name
}
