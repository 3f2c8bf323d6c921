package fsm

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultConfigDir  = "config"
	DefaultConfigFile = "fsm.toml"
)

// DefaultConfigPath is checked when no custom path is given
var DefaultConfigPath = filepath.Join(DefaultConfigDir, DefaultConfigFile)

// LoadConfigAuto loads FSM config with priority: customPath > DefaultConfigPath > embedded
// Returns the source that was used
func LoadConfigAuto[T any](m *Machine[T], customPath, embeddedFallback string) (string, error) {
	src, data, err := ReadConfigAuto(customPath, embeddedFallback)
	if err != nil {
		return src, err
	}
	if err := m.LoadConfig([]byte(data)); err != nil {
		return src, fmt.Errorf("%s: %w", src, err)
	}
	return src, nil
}

// ReadConfigAuto resolves the config text with the same priority as LoadConfigAuto
// Callers that build their own machine (or hash the config) use the text directly
func ReadConfigAuto(customPath, embeddedFallback string) (src, data string, err error) {
	path := customPath
	if path == "" && fileExists(DefaultConfigPath) {
		path = DefaultConfigPath
	}
	if path == "" {
		return "embedded", embeddedFallback, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return path, "", fmt.Errorf("failed to read FSM config: %w", err)
	}
	return path, string(raw), nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
