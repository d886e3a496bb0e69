// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SURFACES_OPACITY_HOVER
const EnvPrefix = "SURFACES"

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(fs afero.Fs, configPath string) error {
	v = viper.New()
	v.SetFs(fs)

	// Set defaults
	setDefaults()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := fs.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) || errors.As(err, &notFound) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Palette source; an empty file falls back to the preset
	v.SetDefault("palette.file", "")
	v.SetDefault("palette.preset", "baseline")
	v.SetDefault("palette.dark", false)

	// State overlay opacities
	v.SetDefault("opacity.hover", 0.08)
	v.SetDefault("opacity.press", 0.12)
	v.SetDefault("opacity.focus", 0.12)
	v.SetDefault("opacity.drag", 0.16)

	// Class prefixes
	v.SetDefault("prefixes.surface", "surface")
	v.SetDefault("prefixes.interactive", "interactive-surface")
	v.SetDefault("prefixes.dragged", "dragged-surface")

	// Disabled styles
	v.SetDefault("disabled.enabled", true)
	v.SetDefault("disabled.text_opacity", 0.38)
	v.SetDefault("disabled.background_opacity", 0.12)
	v.SetDefault("disabled.color", "black")

	// Transition
	v.SetDefault("transition.enabled", true)
	v.SetDefault("transition.duration_ms", 150)

	// Output
	v.SetDefault("output.format", "css")
	v.SetDefault("output.path", "")
	v.SetDefault("output.variables", false)

	// Preview server
	v.SetDefault("server.port", "8080")

	// Logging
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// Set sets a config value and saves to file. A value that fails validation
// is rolled back and nothing is written.
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	previous := v.Get(key)
	v.Set(key, value)

	if _, err := Load(); err != nil {
		v.Set(key, previous)
		return err
	}

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}

// Watch reloads settings whenever the config file changes on disk.
//
// onChange runs on viper's watcher goroutine, which also re-reads the file.
// Once Watch is called, nothing else may touch the config concurrently:
// request paths read a Snapshot fed from onChange instead.
func Watch(onChange func(*Settings, error)) {
	if v == nil {
		return
	}
	watched := v
	watched.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(load(watched))
	})
	watched.WatchConfig()
}
