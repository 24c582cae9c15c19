// Package config loads assistant settings from config.yaml and ASSISTANT_*
// environment variables on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// Interfaces.
const (
	InterfaceTUI = "tui"
	InterfaceCLI = "cli"
)

type Config struct {
	DataDir   string        `yaml:"data_dir" mapstructure:"data_dir"`
	Storage   StorageConfig `yaml:"storage" mapstructure:"storage"`
	Display   DisplayConfig `yaml:"display" mapstructure:"display"`
	Interface string        `yaml:"interface" mapstructure:"interface"`
	Logging   LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

type StorageConfig struct {
	Backend       string        `yaml:"backend" mapstructure:"backend"`
	ContactsFile  string        `yaml:"contacts_file" mapstructure:"contacts_file"`
	NotesFile     string        `yaml:"notes_file" mapstructure:"notes_file"`
	Database      string        `yaml:"database" mapstructure:"database"`
	SaveRetries   int           `yaml:"save_retries" mapstructure:"save_retries"`
	RetryInterval time.Duration `yaml:"retry_interval" mapstructure:"retry_interval"`
}

type DisplayConfig struct {
	PageSize     int `yaml:"page_size" mapstructure:"page_size"`
	UpcomingDays int `yaml:"upcoming_days" mapstructure:"upcoming_days"`
}

type LoggingConfig struct {
	Dir   string `yaml:"dir" mapstructure:"dir"`
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the settings used when nothing overrides them.
// File names are relative to DataDir.
func DefaultConfig() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Storage: StorageConfig{
			Backend:       BackendJSON,
			ContactsFile:  "address_book.json",
			NotesFile:     "notes.json",
			Database:      "assistant.db",
			SaveRetries:   2,
			RetryInterval: 100 * time.Millisecond,
		},
		Display: DisplayConfig{
			PageSize:     10,
			UpcomingDays: 7,
		},
		Interface: InterfaceTUI,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".assistant"
	}
	return filepath.Join(home, ".assistant")
}

// Load reads configuration. An explicit path must exist; without one,
// config.yaml is looked up in the working directory and the user config
// directories, and a missing file means defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "assistant"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "assistant"))
		}
	}

	v.SetEnvPrefix("ASSISTANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", describe(path), err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Interface = strings.ToLower(strings.TrimSpace(cfg.Interface))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys the
// file does not mention.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("storage.contacts_file", cfg.Storage.ContactsFile)
	v.SetDefault("storage.notes_file", cfg.Storage.NotesFile)
	v.SetDefault("storage.database", cfg.Storage.Database)
	v.SetDefault("storage.save_retries", cfg.Storage.SaveRetries)
	v.SetDefault("storage.retry_interval", cfg.Storage.RetryInterval)
	v.SetDefault("display.page_size", cfg.Display.PageSize)
	v.SetDefault("display.upcoming_days", cfg.Display.UpcomingDays)
	v.SetDefault("interface", cfg.Interface)
	v.SetDefault("logging.dir", cfg.Logging.Dir)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

func describe(path string) string {
	if path == "" {
		return "config.yaml"
	}
	return path
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	switch c.Storage.Backend {
	case BackendJSON, BackendYAML, BackendSQLite:
	default:
		return fmt.Errorf("config: storage.backend %q is invalid (must be json, yaml, or sqlite)", c.Storage.Backend)
	}
	switch c.Interface {
	case InterfaceTUI, InterfaceCLI:
	default:
		return fmt.Errorf("config: interface %q is invalid (must be tui or cli)", c.Interface)
	}
	if c.Storage.SaveRetries < 0 {
		return fmt.Errorf("config: storage.save_retries cannot be negative")
	}
	if c.Storage.RetryInterval < 0 {
		return fmt.Errorf("config: storage.retry_interval cannot be negative")
	}
	if c.Display.PageSize < 0 {
		return fmt.Errorf("config: display.page_size cannot be negative")
	}
	if c.Display.UpcomingDays < 0 {
		return fmt.Errorf("config: display.upcoming_days cannot be negative")
	}
	return nil
}

// ContactsPath returns the contacts file, resolved against DataDir.
func (c *Config) ContactsPath() string { return c.resolve(c.Storage.ContactsFile) }

// NotesPath returns the notes file, resolved against DataDir.
func (c *Config) NotesPath() string { return c.resolve(c.Storage.NotesFile) }

// DatabasePath returns the SQLite database, resolved against DataDir.
func (c *Config) DatabasePath() string { return c.resolve(c.Storage.Database) }

// LogDir returns the log directory; empty means the logging default.
func (c *Config) LogDir() string {
	if c.Logging.Dir == "" {
		return ""
	}
	return c.resolve(c.Logging.Dir)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
