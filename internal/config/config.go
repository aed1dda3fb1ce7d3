// Package config provides configuration management for yman.
//
// Values come from defaults, then the TOML file, then YMAN_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// AppName names the configuration directory.
const AppName = "yman"

// EnvPrefix prefixes environment overrides, e.g. YMAN_SESSIONS_DIR.
const EnvPrefix = "yman"

// Config holds the yman configuration.
type Config struct {
	SessionsDir       string        `toml:"sessions_dir"        split_words:"true"`
	Service           string        `toml:"service"             split_words:"true"`
	CdCommand         string        `toml:"cd_command"          split_words:"true"`
	SelfName          string        `toml:"self_name"           split_words:"true"`
	ProbeDelay        time.Duration `toml:"probe_delay"         split_words:"true"`
	ClearAfterRestore bool          `toml:"clear_after_restore" split_words:"true"`
	LogLevel          string        `toml:"log_level"           split_words:"true"`
	ProcMount         string        `toml:"proc_mount"          split_words:"true"`
}

// Dir returns the yman configuration directory, e.g. ~/.config/yman.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// Path returns the path to the main config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns a configuration with all defaults set. SessionsDir is left
// empty and resolved relative to the config directory by Load.
func Default() Config {
	return Config{
		Service:    "org.kde.yakuake",
		CdCommand:  "take",
		SelfName:   AppName,
		ProbeDelay: 50 * time.Millisecond,
		LogLevel:   "warn",
		ProcMount:  "/proc",
	}
}

// Load reads the config file at path (the default path when empty). A
// missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) || explicit {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config from environment: %w", err)
	}

	if cfg.SessionsDir == "" {
		dir, err := Dir()
		if err != nil {
			return Config{}, err
		}
		cfg.SessionsDir = filepath.Join(dir, "sessions")
	}
	return cfg, cfg.Validate()
}

// Validate checks values that would make yman misbehave.
func (c Config) Validate() error {
	if c.ProbeDelay < 0 {
		return fmt.Errorf("probe_delay must not be negative: %s", c.ProbeDelay)
	}
	if c.Service == "" {
		return fmt.Errorf("service must not be empty")
	}
	return nil
}

// EnsureDirs creates the configuration and sessions directories.
func (c Config) EnsureDirs() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	for _, d := range []string{dir, c.SessionsDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}
