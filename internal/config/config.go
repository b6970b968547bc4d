// Package config provides configuration loading for the schema grid converter.
package config

import (
	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
)

// Config holds the application configuration.
type Config struct {
	// DefaultFormat is the protocol used when no --format flag is given.
	DefaultFormat string `koanf:"default_format"`

	// WSDLVersion is the WSDL version used when no --wsdl-version flag is
	// given ("1.1" or "2.0").
	WSDLVersion string `koanf:"wsdl_version"`
}

// Load returns the application configuration using go-libs config-loader.
// Environment variables prefixed SCHEMAGRID_ override the defaults.
func Load() (*Config, error) {
	defaults := Config{
		DefaultFormat: "wsdl",
		WSDLVersion:   "2.0",
	}

	loader := configloader.NewConfigLoader(
		configloader.WithDefaults(defaults),
		configloader.WithEnv[Config]("SCHEMAGRID_"),
	)

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
