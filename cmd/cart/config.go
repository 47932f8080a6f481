package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig mirrors the run settings expressible on the command line (data
// files, class attribute, ensemble size, seed, workers, color), so a
// -config YAML file can supply the same run instead of (or underneath)
// flags. A file value is used only where the corresponding flag still holds
// the built-in default from its declaration in main.go (see
// applyConfigDefaults); a flag given explicitly with its default value
// therefore does not override the file.
type runConfig struct {
	Train   string `yaml:"train"`
	Test    string `yaml:"test"`
	Class   string `yaml:"class"`
	Trees   int    `yaml:"trees"`
	Seed    int    `yaml:"seed"`
	Workers int    `yaml:"workers"`
	Color   bool   `yaml:"color"`
}

func loadRunConfig(path string) (runConfig, error) {
	var c runConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}
