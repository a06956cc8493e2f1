package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// cliConfig holds the CLI's own file-based defaults, loaded once at
// startup. Verbose is the default for --verbose, which overrides it
// when given. Molecule is parsed but no command reads it: normalise
// always takes the molecule name as its argument.
type cliConfig struct {
	Molecule string `toml:"molecule"`
	Verbose  bool   `toml:"verbose"`
}

func loadCLIConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
