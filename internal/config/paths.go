// Package config manages user preferences stored as JSON5/JSON files and
// locates the state directory used for favorites and history.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "casekit"

// Dir returns the casekit config directory.
// Respects XDG_CONFIG_HOME; defaults to $HOME/.config/casekit.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".config", appName), nil
}

// DataDir returns the casekit state directory.
// Respects XDG_DATA_HOME; defaults to $HOME/.local/share/casekit.
func DataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", appName), nil
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.json"), nil
}

func dataFile(name string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}

// FavoritesPath returns the full path to the favorites file.
func FavoritesPath() (string, error) { return dataFile("favorites.json") }

// HistoryPath returns the full path to the history file.
func HistoryPath() (string, error) { return dataFile("history.json") }
