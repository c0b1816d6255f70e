package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/ludo-technologies/smartdirs/domain"
)

// settingsFile is the on-disk shape of the settings file. Only the
// [smartdirs] section is read; unknown sections and keys are ignored so the
// file can be shared with other tools.
type settingsFile struct {
	Smartdirs Config `toml:"smartdirs"`
}

// Load reads the settings file and applies SMARTDIRS_* environment
// overrides on top of it.
//
// An empty path means the per-user default (~/.smartdirs.toml). A missing
// file, or a file without a [smartdirs] section, yields the defaults with
// no error. Malformed values (e.g. a string where a boolean is expected)
// fail with a CONFIG_ERROR.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, domain.NewConfigError("cannot determine home directory", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return applyEnv(cfg)
	case err != nil:
		return nil, domain.NewConfigError(fmt.Sprintf("cannot read settings file: %s", path), err)
	}

	file := settingsFile{Smartdirs: *cfg}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("malformed settings file: %s", path), err)
	}
	result := file.Smartdirs

	return applyEnv(&result)
}

// applyEnv overlays SMARTDIRS_* environment variables on cfg. Environment
// values sit between the explicit argument and the settings file in the
// resolution order.
func applyEnv(cfg *Config) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SMARTDIRS")
	_ = v.BindEnv("timezone")
	_ = v.BindEnv("time_format_with_seconds")
	_ = v.BindEnv("log_dir")

	if tz := v.GetString("timezone"); tz != "" {
		cfg.Timezone = tz
	}
	if raw := v.GetString("time_format_with_seconds"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, domain.NewConfigError(
				fmt.Sprintf("malformed boolean in SMARTDIRS_TIME_FORMAT_WITH_SECONDS: %q", raw), err)
		}
		cfg.TimeFormatWithSeconds = b
	}
	if dir := v.GetString("log_dir"); dir != "" {
		cfg.LogDir = dir
	}

	return cfg, nil
}
