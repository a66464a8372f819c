// Package config persists user preferences between runs: the device address
// history, the last project directory, and the selected font.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxDeviceHistory caps the remembered device list.
const maxDeviceHistory = 20

// FontBuiltin identifies the built-in device font in SelectedFont.
const FontBuiltin = "__builtin__"

type Config struct {
	DeviceHistory []string `yaml:"device_history"`
	ProjectDir    string   `yaml:"project_dir"`
	SelectedFont  string   `yaml:"selected_font"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{SelectedFont: FontBuiltin}
}

// DefaultPath returns ~/.ledpad.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ledpad.yaml"
	}
	return filepath.Join(home, ".ledpad.yaml")
}

// Load reads the config file at path. A missing or unreadable file yields
// defaults rather than an error; preferences are never load-bearing.
func Load(path string) *Config {
	b, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return Default()
	}
	if c.SelectedFont == "" {
		c.SelectedFont = FontBuiltin
	}
	return c
}

// Save writes the config file.
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// RememberDevice moves addr to the front of the history, normalized to upper
// case, deduplicated, capped.
func (c *Config) RememberDevice(addr string) {
	addr = strings.ToUpper(strings.TrimSpace(addr))
	if addr == "" {
		return
	}
	out := []string{addr}
	for _, m := range c.DeviceHistory {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" || m == addr {
			continue
		}
		out = append(out, m)
		if len(out) == maxDeviceHistory {
			break
		}
	}
	c.DeviceHistory = out
}
