// Package config loads webshell settings. Later sources override earlier
// ones: built-in defaults, the project's webshell.yaml, the project's .env,
// WEBSHELL_* environment variables and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestFile is the optional per-project settings file.
	ManifestFile = "webshell.yaml"
	// EnvFile is read for WEBSHELL_* variables missing from the environment.
	EnvFile   = ".env"
	EnvPrefix = "WEBSHELL_"
)

// Config holds the settings for one harness run.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Dev    DevConfig    `yaml:"dev"`
	// AssetsDir replaces the embedded payload with files from disk. A relative
	// path is taken from the project directory.
	AssetsDir string `yaml:"assets_dir"`
	Debug     bool   `yaml:"debug"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type DevConfig struct {
	Command []string `yaml:"command"`
	Port    int      `yaml:"port"`
	Wait    bool     `yaml:"wait"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1024, Height: 768},
		Dev: DevConfig{
			Command: []string{"npx", "vite", "--port", "{port}", "--strictPort"},
			Port:    5173,
		},
	}
}

// Load builds the configuration for projectDir. A missing manifest or .env
// file is not an error.
func Load(projectDir string) (*Config, error) {
	cfg := Default()

	if err := loadAndMerge(cfg, filepath.Join(projectDir, ManifestFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", ManifestFile, err)
	}

	dotenv, err := godotenv.Read(filepath.Join(projectDir, EnvFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", EnvFile, err)
	}
	if err := applyEnv(cfg, lookupWith(dotenv)); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// loadAndMerge merges the YAML file at path into cfg.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

func mergeConfigs(base, override *Config, raw map[string]any) {
	if override.Window.Width != 0 {
		base.Window.Width = override.Window.Width
	}
	if override.Window.Height != 0 {
		base.Window.Height = override.Window.Height
	}
	if len(override.Dev.Command) > 0 {
		base.Dev.Command = append([]string{}, override.Dev.Command...)
	}
	if override.Dev.Port != 0 {
		base.Dev.Port = override.Dev.Port
	}
	if fieldSet(raw, "dev", "wait") {
		base.Dev.Wait = override.Dev.Wait
	}
	if override.AssetsDir != "" {
		base.AssetsDir = override.AssetsDir
	}
	if fieldSet(raw, "debug") {
		base.Debug = override.Debug
	}
}

// fieldSet reports whether path exists in raw, so an explicit false can
// override a true default.
func fieldSet(raw map[string]any, path ...string) bool {
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		if current, ok = m[key]; !ok {
			return false
		}
	}
	return len(path) > 0
}

// lookupWith prefers the real environment and falls back to dotenv.
func lookupWith(dotenv map[string]string) func(string) string {
	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	ints := map[string]*int{
		EnvPrefix + "WIDTH":    &cfg.Window.Width,
		EnvPrefix + "HEIGHT":   &cfg.Window.Height,
		EnvPrefix + "DEV_PORT": &cfg.Dev.Port,
	}
	for _, key := range lo.Keys(ints) {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be an integer", key, v)
		}
		*ints[key] = n
	}

	if v := strings.TrimSpace(getenv(EnvPrefix + "DEV_COMMAND")); v != "" {
		cfg.Dev.Command = strings.Fields(v)
	}
	if v := strings.TrimSpace(getenv(EnvPrefix + "ASSETS_DIR")); v != "" {
		cfg.AssetsDir = v
	}
	if v, ok := parseBool(getenv(EnvPrefix + "DEV_WAIT")); ok {
		cfg.Dev.Wait = v
	}
	if v, ok := parseBool(getenv(EnvPrefix + "DEBUG")); ok {
		cfg.Debug = v
	}
	return nil
}

func parseBool(val string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Dev.Port <= 0 || c.Dev.Port > 65535 {
		return fmt.Errorf("dev port must be between 1 and 65535, got %d", c.Dev.Port)
	}
	if len(c.Dev.Command) == 0 || strings.TrimSpace(c.Dev.Command[0]) == "" {
		return errors.New("dev command cannot be empty")
	}
	return nil
}
