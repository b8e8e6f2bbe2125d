package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefaults holds session defaults that can be loaded from a YAML file
// via --config, so a site's host/port/family don't need to be retyped on
// every invocation. This lives entirely in the CLI, never in the mc3e
// library package - the library itself persists no state.
type fileDefaults struct {
	Host     string  `yaml:"host"`
	Port     int     `yaml:"port"`
	Family   string  `yaml:"family"`
	CommType string  `yaml:"commtype"`
	Timer    float64 `yaml:"timer_seconds"`
}

func loadFileDefaults(path string) (fileDefaults, error) {
	var d fileDefaults
	data, err := os.ReadFile(path)
	if err != nil {
		return d, err
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, err
	}
	return d, nil
}
