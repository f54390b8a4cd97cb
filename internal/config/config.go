package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for the analysis service.
type Config struct {
	Data     DataConfig     `toml:"data"`
	Server   ServerConfig   `toml:"server"`
	Analysis AnalysisConfig `toml:"analysis"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// RateLimit is the maximum number of API requests per second.
	RateLimit float64 `toml:"rate_limit"`
}

type AnalysisConfig struct {
	// FlatTolerance is the demand-change band (in percent points) within
	// which a trend is reported as flat and a comparison as a tie.
	FlatTolerance float64 `toml:"flat_tolerance"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data:     DataConfig{Dir: "data"},
		Server:   ServerConfig{Host: "localhost", Port: 8000, RateLimit: 20},
		Analysis: AnalysisConfig{FlatTolerance: 0.5},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
