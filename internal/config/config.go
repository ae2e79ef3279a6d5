// Package config loads the immutable runtime configuration. Precedence is
// env var → .env.local → .env → config.toml → default; callers receive a
// value struct and pass it down explicitly.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultServiceURL = "http://host.docker.internal:3020"
	DefaultListen     = "127.0.0.1:8094"
	DefaultModel      = "gpt-4o-mini"
)

// FieldSource indicates where a config value originates.
type FieldSource string

const (
	SourceDefault     FieldSource = "default"
	SourceConfigFile  FieldSource = "config.toml"
	SourceDotEnv      FieldSource = ".env"
	SourceDotEnvLocal FieldSource = ".env.local"
	SourceEnv         FieldSource = "env"
)

// FieldInfo describes one configurable field and its provenance.
type FieldInfo struct {
	Key    string
	Value  string
	Source FieldSource
}

type Config struct {
	Mariposa MariposaConfig `toml:"mariposa"`
	Filter   FilterConfig   `toml:"filter"`
	Pipe     PipeConfig     `toml:"pipe"`
	Server   ServerConfig   `toml:"server"`
	Verbose  bool           `toml:"verbose"`
}

type MariposaConfig struct {
	URL string `toml:"url"`
}

type FilterConfig struct {
	EnableSlashCommands bool `toml:"enable_slash_commands"`
	EnableAutoFetch     bool `toml:"enable_auto_fetch"`
}

type PipeConfig struct {
	// PassthroughModel is recorded in config but no runtime path dispatches
	// to it; non-command input gets the static fallback.
	PassthroughModel string `toml:"passthrough_model"`
}

type ServerConfig struct {
	Listen string `toml:"listen"`
}

func Default() Config {
	return Config{
		Mariposa: MariposaConfig{URL: DefaultServiceURL},
		Filter: FilterConfig{
			EnableSlashCommands: true,
			EnableAutoFetch:     true,
		},
		Pipe:   PipeConfig{PassthroughModel: DefaultModel},
		Server: ServerConfig{Listen: DefaultListen},
	}
}

func Load() (Config, error) {
	if err := loadDotEnvPrecedence(); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := mergeUserConfig(&cfg); err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg)
	return cfg, nil
}

func StateDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "mariposa")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func loadDotEnvPrecedence() error {
	for _, name := range []string{".env", ".env.local"} {
		values, err := godotenv.Read(name)
		if err != nil {
			continue
		}
		for k, v := range values {
			if _, exists := os.LookupEnv(k); !exists {
				if setErr := os.Setenv(k, v); setErr != nil {
					return setErr
				}
			}
		}
	}
	return nil
}

func mergeUserConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	_, err = toml.DecodeFile(path, cfg)
	return err
}

func mergeEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("MARIPOSA_URL")); v != "" {
		cfg.Mariposa.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("MARIPOSA_SLASH_COMMANDS")); v != "" {
		cfg.Filter.EnableSlashCommands = boolValue(v)
	}
	if v := strings.TrimSpace(os.Getenv("MARIPOSA_AUTO_FETCH")); v != "" {
		cfg.Filter.EnableAutoFetch = boolValue(v)
	}
	if v := strings.TrimSpace(os.Getenv("MARIPOSA_PASSTHROUGH_MODEL")); v != "" {
		cfg.Pipe.PassthroughModel = v
	}
	if v := strings.TrimSpace(os.Getenv("MARIPOSA_LISTEN")); v != "" {
		cfg.Server.Listen = v
	}
	if v := strings.TrimSpace(os.Getenv("MARIPOSA_VERBOSE")); v != "" {
		cfg.Verbose = boolValue(v)
	}
}

func boolValue(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

// ConfigPath returns the path to the user's config.toml file.
func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "mariposa", "config.toml"), nil
}

// Save writes the config to the user config directory.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// fieldDef describes a configurable field for EffectiveFields.
type fieldDef struct {
	Key    string
	EnvVar string
}

var fieldDefs = []fieldDef{
	{Key: "mariposa.url", EnvVar: "MARIPOSA_URL"},
	{Key: "filter.enable_slash_commands", EnvVar: "MARIPOSA_SLASH_COMMANDS"},
	{Key: "filter.enable_auto_fetch", EnvVar: "MARIPOSA_AUTO_FETCH"},
	{Key: "pipe.passthrough_model", EnvVar: "MARIPOSA_PASSTHROUGH_MODEL"},
	{Key: "server.listen", EnvVar: "MARIPOSA_LISTEN"},
	{Key: "verbose", EnvVar: "MARIPOSA_VERBOSE"},
}

// EnvVarForField returns the environment variable mapped to a field key.
func EnvVarForField(key string) string {
	for _, fd := range fieldDefs {
		if fd.Key == key {
			return fd.EnvVar
		}
	}
	return ""
}

func fieldValue(cfg Config, key string) string {
	switch key {
	case "mariposa.url":
		return cfg.Mariposa.URL
	case "filter.enable_slash_commands":
		return strconv.FormatBool(cfg.Filter.EnableSlashCommands)
	case "filter.enable_auto_fetch":
		return strconv.FormatBool(cfg.Filter.EnableAutoFetch)
	case "pipe.passthrough_model":
		return cfg.Pipe.PassthroughModel
	case "server.listen":
		return cfg.Server.Listen
	case "verbose":
		return strconv.FormatBool(cfg.Verbose)
	default:
		return ""
	}
}

func readDotFile(name string) map[string]string {
	vals, err := godotenv.Read(name)
	if err != nil {
		return nil
	}
	return vals
}

// EffectiveFields reports every configurable field with the source that
// provided its current value, checked in precedence order.
func EffectiveFields(cfg Config) []FieldInfo {
	dotEnvLocal := readDotFile(".env.local")
	dotEnv := readDotFile(".env")

	def := Default()
	fileCfg := def
	if err := mergeUserConfig(&fileCfg); err != nil {
		fileCfg = def
	}

	result := make([]FieldInfo, 0, len(fieldDefs))
	for _, fd := range fieldDefs {
		fi := FieldInfo{Key: fd.Key}

		if v, ok := os.LookupEnv(fd.EnvVar); ok && strings.TrimSpace(v) != "" {
			fi.Value = strings.TrimSpace(v)
			if _, inLocal := dotEnvLocal[fd.EnvVar]; inLocal {
				fi.Source = SourceDotEnvLocal
			} else if _, inDot := dotEnv[fd.EnvVar]; inDot {
				fi.Source = SourceDotEnv
			} else {
				fi.Source = SourceEnv
			}
			result = append(result, fi)
			continue
		}

		if fileVal := fieldValue(fileCfg, fd.Key); fileVal != fieldValue(def, fd.Key) {
			fi.Value = fileVal
			fi.Source = SourceConfigFile
			result = append(result, fi)
			continue
		}

		fi.Value = fieldValue(cfg, fd.Key)
		fi.Source = SourceDefault
		result = append(result, fi)
	}
	return result
}

// ValidateField checks whether value is valid for the given field key.
func ValidateField(key, value string) error {
	switch key {
	case "mariposa.url":
		if strings.TrimSpace(value) == "" {
			return errors.New("mariposa.url must not be empty")
		}
		if !strings.HasPrefix(value, "http") {
			return errors.New("mariposa.url must start with \"http\"")
		}
	case "filter.enable_slash_commands", "filter.enable_auto_fetch", "verbose":
		if value != "true" && value != "false" {
			return fmt.Errorf("%s must be \"true\" or \"false\", got %q", key, value)
		}
	case "pipe.passthrough_model":
		if strings.TrimSpace(value) == "" {
			return errors.New("pipe.passthrough_model must not be empty")
		}
	case "server.listen":
		_, port, err := net.SplitHostPort(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("server.listen must be host:port (e.g. %q): %w", DefaultListen, err)
		}
		portNumber, err := strconv.Atoi(port)
		if err != nil || portNumber < 0 || portNumber > 65535 {
			return fmt.Errorf("server.listen must use a valid numeric port (e.g. %q)", DefaultListen)
		}
	}
	return nil
}

// ApplyField sets a field on the config struct by key name.
func ApplyField(cfg *Config, key, value string) {
	switch key {
	case "mariposa.url":
		cfg.Mariposa.URL = value
	case "filter.enable_slash_commands":
		cfg.Filter.EnableSlashCommands = boolValue(value)
	case "filter.enable_auto_fetch":
		cfg.Filter.EnableAutoFetch = boolValue(value)
	case "pipe.passthrough_model":
		cfg.Pipe.PassthroughModel = value
	case "server.listen":
		cfg.Server.Listen = value
	case "verbose":
		cfg.Verbose = boolValue(value)
	}
}
