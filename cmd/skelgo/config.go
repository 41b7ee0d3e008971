package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// cliConfig holds settings that can be supplied via --config instead
// of flags. Zero value matches the command's flag defaults.
type cliConfig struct {
	Verbose bool   `yaml:"verbose"`
	Format  string `yaml:"format"`
}

func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
