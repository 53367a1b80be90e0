package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	AppName        = "focus-timer"
	configFileName = "config.yaml"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds startup settings. The theme chosen here only sets the
// initial palette; toggling at runtime is never written back.
type Config struct {
	DBPath     string `yaml:"db_path"`
	StorageKey string `yaml:"storage_key"`
	Theme      string `yaml:"theme"`
	LogFile    string `yaml:"log_file"`
}

// Default returns the settings used when no file exists, rooted at dir.
func Default(dir string) Config {
	return Config{
		DBPath:     filepath.Join(dir, "focus.db"),
		StorageKey: "focusSessions",
		Theme:      ThemeLight,
		LogFile:    filepath.Join(dir, "focus.log"),
	}
}

// Dir is the per-user directory holding config, database and log.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the YAML file at path. A missing file yields the defaults for
// the file's directory; fields left empty in the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default(filepath.Dir(path))

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fileData Config
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}

	if fileData.DBPath != "" {
		cfg.DBPath = fileData.DBPath
	}
	if fileData.StorageKey != "" {
		cfg.StorageKey = fileData.StorageKey
	}
	if fileData.Theme != "" {
		cfg.Theme = fileData.Theme
	}
	if fileData.LogFile != "" {
		cfg.LogFile = fileData.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q: want %q or %q", c.Theme, ThemeLight, ThemeDark)
	}
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	return nil
}

func (c Config) Dark() bool {
	return c.Theme == ThemeDark
}
