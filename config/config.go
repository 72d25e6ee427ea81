package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"jaldh/internal/domain"
)

// DefaultPath is the config file used when --config is not given.
const DefaultPath = "config.yaml"

// Config holds all configuration for jaldh.
type Config struct {
	Language          string        `yaml:"language" toml:"language"` // "python", "c", "cpp", "auto"
	FileSeparator     string        `yaml:"file_separator" toml:"file_separator"`
	FunctionSeparator string        `yaml:"function_separator" toml:"function_separator"`
	Header            HeaderConfig  `yaml:"header" toml:"header"`
	Collect           CollectConfig `yaml:"collect" toml:"collect"`
	Log               LogConfig     `yaml:"log" toml:"log"`
	History           HistoryConfig `yaml:"history" toml:"history"`
}

// HeaderConfig holds the metadata written into module headers.
type HeaderConfig struct {
	Author      string `yaml:"author" toml:"author"`
	IncludeDate bool   `yaml:"include_date" toml:"include_date"`
	DateFormat  string `yaml:"date_format" toml:"date_format"` // strftime, e.g. "%Y-%m-%d"
}

// CollectConfig holds the glob patterns used by -a / -r file collection.
type CollectConfig struct {
	Includes []string `yaml:"includes" toml:"includes"`
	Excludes []string `yaml:"excludes" toml:"excludes"`
}

// LogConfig holds run log configuration.
type LogConfig struct {
	File           string `yaml:"file" toml:"file"`
	FlushThreshold int    `yaml:"flush_threshold" toml:"flush_threshold"` // entries buffered before a write
}

// HistoryConfig holds annotation history configuration.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	hdr := domain.DefaultHeaderConfig()
	return &Config{
		Language:          string(domain.LangAuto),
		FileSeparator:     hdr.FileSeparator,
		FunctionSeparator: hdr.FunctionSeparator,
		Header: HeaderConfig{
			Author:      hdr.Author,
			IncludeDate: hdr.IncludeDate,
			DateFormat:  hdr.DateFormat,
		},
		Collect: CollectConfig{
			Includes: []string{"**/*.py", "**/*.c", "**/*.h", "**/*.cpp", "**/*.hpp", "**/*.cc"},
			Excludes: []string{"**/.git/**", "**/.jaldh/**", "**/node_modules/**", "**/vendor/**", "**/__pycache__/**"},
		},
		Log: LogConfig{
			File:           "jaldh.log",
			FlushThreshold: 1,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(".jaldh", "history.db"),
		},
	}
}

// HeaderConfig returns the read-only header settings for the annotator.
func (c *Config) HeaderConfig() domain.HeaderConfig {
	return domain.HeaderConfig{
		FileSeparator:     c.FileSeparator,
		FunctionSeparator: c.FunctionSeparator,
		Author:            c.Header.Author,
		IncludeDate:       c.Header.IncludeDate,
		DateFormat:        c.Header.DateFormat,
	}
}

// Load loads configuration from a YAML file, or TOML when path ends in .toml.
// Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// EnsureDefault loads the configuration at path, first writing the defaults
// there if the file does not exist. Any failure wraps
// domain.ErrConfigUnavailable.
func EnsureDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := DefaultConfig().Save(path); err != nil {
			return nil, fmt.Errorf("%w: create %s: %v", domain.ErrConfigUnavailable, path, err)
		}
	case err != nil:
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigUnavailable, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrConfigUnavailable, path)
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigUnavailable, err)
	}
	return cfg, nil
}

// Save saves configuration to a YAML or TOML file.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(c)
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
