//go:build windows

package config

import (
	"os"
	"path/filepath"
)

// Platform-specific path defaults for Windows

// GetDefaultConfigLocation returns the default configuration file path for Windows.
func GetDefaultConfigLocation() string {
	programData := os.Getenv("PROGRAMDATA")
	if programData == "" {
		programData = "C:\\ProgramData"
	}
	return filepath.Join(programData, "Entries", "config.yml")
}
