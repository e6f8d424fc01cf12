package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	appName  = "picross"
	fileName = "config.toml"

	// EnvConfig points at an alternate config file
	EnvConfig = "PICROSS_CONFIG"
)

// Dir returns the picross config directory under the user config base
// Falls back to HOME when UserConfigDir is unavailable
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, appName), nil
}

// Path returns the config file location, PICROSS_CONFIG when set
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}
