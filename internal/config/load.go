package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/veekay/internal/logger"
)

// FileName is the config file looked up in the standard locations.
const FileName = "scene.yaml"

// ErrInvalidWindow is returned when the window size cannot give an aspect ratio.
var ErrInvalidWindow = errors.New("invalid window size")

// Load loads configuration with priority: defaults < file < flags.
// f may be nil when there are no overrides.
func Load(f *Flags) (*Config, error) {
	if f == nil {
		f = &Flags{}
	}
	cfg := Default()

	// Explicit path takes priority over the search path.
	configPath := f.Config
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
		logger.Debug("config loaded", zap.String("path", configPath), zap.Int("models", len(cfg.Models)))
	}

	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that the scene itself cannot check.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidWindow)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./" + FileName,
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Veekay")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Veekay")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "veekay")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "veekay")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A models or points list in the file replaces the default list.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
