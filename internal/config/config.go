// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PTE_THEME_PREFIX
const EnvPrefix = "PTE"

var v *viper.Viper

var defaults = map[string]interface{}{
	// Theme naming
	"theme.prefix":   "pte",
	"theme.selector": ":root",
	"theme.style_id": "pte-vars",
	"theme.file":     "",
	"theme.export":   "",

	// Build-time export
	"export.output": "./public/pte.css",

	// Preview server
	"server.http_port":   "8080",
	"server.watch":       false,
	"server.allowed_ips": "127.0.0.0/8,::1/128",

	// Logging
	"log.level":  "info",
	"log.format": "console",
}

// DefaultPath returns $PTE_CONFIG, or ~/.pte/config.yaml when unset
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pte", "config.yaml")
	}
	return filepath.Join(home, ".pte", "config.yaml")
}

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	setDefaults()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// First run: persist the defaults so `pte config list` has a file to show
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

func setDefaults() {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// Keys lists every known setting in sorted order
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether key is a recognised setting
func IsKnown(key string) bool {
	_, ok := defaults[key]
	return ok
}

// GetString returns a config value as string, falling back to the built-in default
func GetString(key string) string {
	if v == nil {
		if d, ok := defaults[key]; ok {
			return fmt.Sprint(d)
		}
		return ""
	}
	return v.GetString(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		b, _ := defaults[key].(bool)
		return b
	}
	return v.GetBool(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	v.Set(key, value)

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
