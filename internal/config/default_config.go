package config

import (
	_ "embed"
)

// DefaultConfigTOML is the commented settings template written by
// `smartdirs init`.
//
//go:embed default_config.toml
var DefaultConfigTOML string
