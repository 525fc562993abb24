package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the huelog config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/huelog; on macOS
// to ~/Library/Application Support/huelog; and on Windows to %AppData%/huelog.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "huelog"), nil
}

// Path returns the location of config.json.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
