package ui

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/floorplan/pkg/scene"
)

// Config stores persistent viewer preferences
type Config struct {
	Theme          string `json:"theme"`
	ShowLabels     bool   `json:"show_labels"`
	ShowDimensions bool   `json:"show_dimensions"`
}

// DefaultConfig is used when no config file exists yet
func DefaultConfig() *Config {
	return &Config{
		Theme:      scene.ThemeLight.String(),
		ShowLabels: true,
	}
}

// Apply copies the preferences onto a scene style. Unknown themes are ignored.
func (c *Config) Apply(style *scene.Style) {
	if t, err := scene.ParseTheme(c.Theme); err == nil {
		style.Theme = t
	}
	style.ShowLabels = c.ShowLabels
	style.ShowDimensions = c.ShowDimensions
}

// Capture records the preferences held by a scene style.
func (c *Config) Capture(style scene.Style) {
	c.Theme = style.Theme.String()
	c.ShowLabels = style.ShowLabels
	c.ShowDimensions = style.ShowDimensions
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	var configDir string
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: %APPDATA%\floorplan
		configDir = filepath.Join(appData, "floorplan")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		// Linux/macOS: ~/.config/floorplan
		configDir = filepath.Join(homeDir, ".config", "floorplan")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the viewer preferences
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// SaveConfig saves the viewer preferences
func SaveConfig(config *Config) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
