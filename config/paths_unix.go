//go:build !windows

package config

// Platform-specific path defaults for Unix systems

// GetDefaultConfigLocation returns the default configuration file path.
func GetDefaultConfigLocation() string {
	return "/etc/entries/config.yml"
}
