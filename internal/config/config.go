package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigFileName is the per-user settings file, looked up in the
// home directory when no explicit path is given.
const DefaultConfigFileName = ".smartdirs.toml"

// Config represents the [smartdirs] section of the settings file
type Config struct {
	// Timezone is an IANA timezone name used when the caller does not
	// pass one explicitly. Empty means "use the local timezone".
	Timezone string `toml:"timezone"`

	// TimeFormatWithSeconds selects the seconds-inclusive default time
	// format for timestamped names.
	TimeFormatWithSeconds bool `toml:"time_format_with_seconds"`

	// LogDir enables creation logging when set. Supports ~ expansion.
	LogDir string `toml:"log_dir"`

	// Ignore lists glob patterns for sibling directories excluded from
	// the collision scan.
	Ignore []string `toml:"ignore"`
}

// DefaultConfig returns the configuration used when no settings file exists
func DefaultConfig() *Config {
	return &Config{}
}

// DefaultConfigPath returns the per-user settings file location
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigFileName), nil
}
