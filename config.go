package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// generateConfig holds the settings of a generation run.
type generateConfig struct {
	Count       int    `yaml:"count"`
	MaxAttempts int    `yaml:"max_attempts"`
	Source      string `yaml:"source"`
	Seed        string `yaml:"seed"`
	LogLevel    string `yaml:"log_level"`
}

// defaultGenerateConfig returns the built-in settings.
func defaultGenerateConfig() generateConfig {
	return generateConfig{
		Count:    defaultCount,
		LogLevel: defaultLogLevel,
	}
}

// loadGenerateConfig reads a YAML file over base. Keys absent from the file
// keep their value from base.
func loadGenerateConfig(path string, base generateConfig) (generateConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read %s: %w", path, err)
	}
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// normalize fills derived fields and validates the result.
func (c *generateConfig) normalize() error {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if c.Source == "" {
		if c.Seed != "" {
			c.Source = sourceSeeded
		} else {
			c.Source = defaultSource
		}
	}
	if c.Count <= 0 {
		return fmt.Errorf("count must be a positive integer, got %d", c.Count)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max attempts must not be negative, got %d", c.MaxAttempts)
	}
	switch c.Source {
	case sourceSecure, sourceRuntime:
		if c.Seed != "" {
			return fmt.Errorf("seed is only valid with the %s source", sourceSeeded)
		}
	case sourceSeeded:
		if c.Seed == "" {
			return fmt.Errorf("%s source requires a seed", sourceSeeded)
		}
	default:
		return fmt.Errorf("unknown source %q (expected %s, %s or %s)", c.Source, sourceSecure, sourceRuntime, sourceSeeded)
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
