package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/apptemplate/core"
)

// Defaults applied before the YAML file and the environment.
const (
	DefaultLogDir       = "logs"
	DefaultLogFile      = "app.log"
	DefaultErrorLogFile = "error.log"
	DefaultJSONLogFile  = "app.json.log"
	DefaultMaxSizeMB    = 10
	DefaultMaxBackups   = 5
	DefaultEnvironment  = "development"
	DefaultTimeFormat   = "2006-01-02 15:04:05.000"

	// EnvironmentProduction is the Environment value that enables
	// production mode.
	EnvironmentProduction = "production"
)

// Config holds the resolved logging configuration.
type Config struct {
	LogDir       string
	LogFile      string
	ErrorLogFile string
	JSONLogFile  string

	// Level gates every logger before any sink sees the entry.
	Level core.Level
	// FileLevel applies to the standard and JSON file sinks.
	FileLevel core.Level
	// ConsoleLevel applies to the console sink.
	ConsoleLevel core.Level

	MaxSizeMB  int
	MaxBackups int

	Environment string
	UseJSON     bool
	// TimeFormat is the timestamp layout of every sink, JSON included.
	TimeFormat string
}

// fileConfig is the YAML document shape. Pointers tell an absent key
// from a zero value.
type fileConfig struct {
	LogDir       *string `yaml:"log_dir"`
	LogFile      *string `yaml:"log_file"`
	ErrorLogFile *string `yaml:"error_log_file"`
	JSONLogFile  *string `yaml:"json_log_file"`
	Level        *string `yaml:"level"`
	FileLevel    *string `yaml:"file_level"`
	ConsoleLevel *string `yaml:"console_level"`
	MaxSizeMB    *int    `yaml:"max_size_mb"`
	MaxBackups   *int    `yaml:"max_backups"`
	Environment  *string `yaml:"environment"`
	UseJSON      *bool   `yaml:"use_json"`
	TimeFormat   *string `yaml:"time_format"`
}

// Default returns a Config holding only the built-in defaults.
func Default() *Config {
	return &Config{
		LogDir:       DefaultLogDir,
		LogFile:      DefaultLogFile,
		ErrorLogFile: DefaultErrorLogFile,
		JSONLogFile:  DefaultJSONLogFile,
		Level:        core.InfoLevel,
		FileLevel:    core.DebugLevel,
		ConsoleLevel: core.DebugLevel,
		MaxSizeMB:    DefaultMaxSizeMB,
		MaxBackups:   DefaultMaxBackups,
		Environment:  DefaultEnvironment,
		TimeFormat:   DefaultTimeFormat,
	}
}

// Load resolves the configuration from defaults, the YAML file at path
// (skipped when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := cfg.applyYAML(data); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// FromEnv resolves the configuration from defaults and the environment.
// It never fails.
func FromEnv() *Config {
	cfg := Default()
	applyEnvOverrides(cfg)
	// Environment overrides cannot make file names collide, and every
	// other problem is clamped.
	_ = cfg.Validate()
	return cfg
}

func (c *Config) applyYAML(data []byte) error {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	setString(&c.LogDir, fc.LogDir)
	setString(&c.LogFile, fc.LogFile)
	setString(&c.ErrorLogFile, fc.ErrorLogFile)
	setString(&c.JSONLogFile, fc.JSONLogFile)
	setString(&c.Environment, fc.Environment)
	setString(&c.TimeFormat, fc.TimeFormat)

	levels := []struct {
		key string
		src *string
		dst *core.Level
	}{
		{"level", fc.Level, &c.Level},
		{"file_level", fc.FileLevel, &c.FileLevel},
		{"console_level", fc.ConsoleLevel, &c.ConsoleLevel},
	}
	for _, l := range levels {
		if l.src == nil {
			continue
		}
		lvl, ok := core.ParseLevel(*l.src)
		if !ok {
			return fmt.Errorf("%s: unknown level %q", l.key, *l.src)
		}
		*l.dst = lvl
	}

	if fc.MaxSizeMB != nil {
		c.MaxSizeMB = *fc.MaxSizeMB
	}
	if fc.MaxBackups != nil {
		c.MaxBackups = *fc.MaxBackups
	}
	if fc.UseJSON != nil {
		c.UseJSON = *fc.UseJSON
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Values that fail to parse are skipped.
func applyEnvOverrides(cfg *Config) {
	envLevel("LOG_LEVEL", &cfg.Level)
	envLevel("FILE_LOG_LEVEL", &cfg.FileLevel)
	envLevel("CONSOLE_LOG_LEVEL", &cfg.ConsoleLevel)

	if v := os.Getenv("LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("USE_JSON_FORMAT"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.UseJSON = b
		}
	}
	envPositiveInt("LOG_MAX_SIZE_MB", &cfg.MaxSizeMB)
	envPositiveInt("LOG_MAX_BACKUPS", &cfg.MaxBackups)
}

func envLevel(key string, dst *core.Level) {
	if lvl, ok := core.ParseLevel(os.Getenv(key)); ok {
		*dst = lvl
	}
}

func envPositiveInt(key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
		*dst = n
	}
}

// Production reports whether the application runs in production mode.
func (c *Config) Production() bool {
	return c.Environment == EnvironmentProduction
}

// JSONFileFormat reports whether the standard file sink writes JSON
// instead of text.
func (c *Config) JSONFileFormat() bool {
	return c.UseJSON || c.Production()
}

// Path joins name onto the log directory.
func (c *Config) Path(name string) string {
	return filepath.Join(c.LogDir, name)
}

// Validate restores defaults for empty or non-positive values and reports
// settings that cannot be repaired, such as two sinks sharing one file.
func (c *Config) Validate() error {
	if c.LogDir == "" {
		c.LogDir = DefaultLogDir
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.ErrorLogFile == "" {
		c.ErrorLogFile = DefaultErrorLogFile
	}
	if c.JSONLogFile == "" {
		c.JSONLogFile = DefaultJSONLogFile
	}
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = DefaultMaxBackups
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	if c.TimeFormat == "" {
		c.TimeFormat = DefaultTimeFormat
	}

	var errs []string
	seen := make(map[string]string, 3)
	for _, f := range []struct{ key, name string }{
		{"log_file", c.LogFile},
		{"error_log_file", c.ErrorLogFile},
		{"json_log_file", c.JSONLogFile},
	} {
		clean := filepath.Clean(f.name)
		if other, ok := seen[clean]; ok {
			errs = append(errs, fmt.Sprintf("%s and %s both name %q", other, f.key, f.name))
			continue
		}
		seen[clean] = f.key
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
