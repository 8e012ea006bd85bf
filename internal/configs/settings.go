package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
)

const (
	DefaultStorePath = ".map.json"
	DefaultMinLength = 8
	DefaultMaxLength = 15
)

// Settings is the effective configuration for one invocation.
type Settings struct {
	// StorePath is the credential file, relative to the working directory
	// unless absolute.
	StorePath string `toml:"store_path" env:"PASSMAP_STORE"`

	// MinLength and MaxLength bound random password lengths as [min, max).
	MinLength int `toml:"min_length" env:"PASSMAP_MIN_LENGTH"`
	MaxLength int `toml:"max_length" env:"PASSMAP_MAX_LENGTH"`

	// Audit enables the JSON Lines audit log next to the store.
	Audit bool `toml:"audit" env:"PASSMAP_AUDIT"`
}

type locationEnv struct {
	ConfigDir string `env:"PASSMAP_CONFIG_DIR"`
}

var (
	// ActiveSettings holds the settings loaded by InitSettings.
	ActiveSettings = DefaultSettings()

	// ActiveConfigPath is the config file InitSettings consulted.
	ActiveConfigPath string

	// ActiveConfigFound reports whether that file existed.
	ActiveConfigFound bool
)

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		StorePath: DefaultStorePath,
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
		Audit:     true,
	}
}

// ConfigPath returns the path of the user's config.toml.
func ConfigPath() (string, error) {
	var loc locationEnv
	if err := ParseEnv(&loc); err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrInvalidConfig, err)
	}
	if loc.ConfigDir != "" {
		return filepath.Join(loc.ConfigDir, "config.toml"), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, "passmap", "config.toml"), nil
}

// LoadSettings resolves defaults, the config file, and the environment.
// It returns the settings, the config path consulted, and whether the
// file existed.
func LoadSettings() (*Settings, string, bool, error) {
	settings := DefaultSettings()

	configPath, err := ConfigPath()
	if err != nil {
		return nil, "", false, err
	}

	found := false
	if _, err := os.Stat(configPath); err == nil {
		found = true
		if err := LoadTOML(configPath, settings); err != nil {
			return nil, configPath, found, fmt.Errorf("%w: %s: %w", kerrors.ErrInvalidConfig, configPath, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, configPath, false, fmt.Errorf("error checking config file %s: %w", configPath, err)
	}

	if err := ParseEnv(settings); err != nil {
		return nil, configPath, found, fmt.Errorf("%w: %w", kerrors.ErrInvalidConfig, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, configPath, found, err
	}

	return settings, configPath, found, nil
}

// InitSettings loads settings into ActiveSettings.
func InitSettings() error {
	settings, configPath, found, err := LoadSettings()
	if err != nil {
		return err
	}

	ActiveSettings = settings
	ActiveConfigPath = configPath
	ActiveConfigFound = found
	return nil
}

// Validate checks that the settings describe a usable configuration.
func (s *Settings) Validate() error {
	if s.StorePath == "" {
		return fmt.Errorf("%w: store_path must not be empty", kerrors.ErrInvalidConfig)
	}
	if s.MinLength <= 0 {
		return fmt.Errorf("%w: min_length must be positive, got %d", kerrors.ErrInvalidConfig, s.MinLength)
	}
	if s.MaxLength <= s.MinLength {
		return fmt.Errorf("%w: max_length (%d) must be greater than min_length (%d)",
			kerrors.ErrInvalidConfig, s.MaxLength, s.MinLength)
	}
	return nil
}

// WriteDefaultConfig writes the default settings to path. It refuses to
// replace an existing file unless force is set.
func WriteDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", kerrors.ErrConfigExists, path)
		}
	}
	return SaveTOML(path, DefaultSettings())
}
