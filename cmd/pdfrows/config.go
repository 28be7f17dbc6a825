package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// fileConfig is the YAML settings file. Unset keys keep the flag defaults and
// flags given on the command line win over the file.
type fileConfig struct {
	RowGap        *float64 `yaml:"row_gap"`
	CellGap       *float64 `yaml:"cell_gap"`
	KeepFirstChar *bool    `yaml:"keep_first_char"`
	Normalize     *bool    `yaml:"normalize"`
	Format        string   `yaml:"format"`
	Pages         []int    `yaml:"pages"`
}

// readConfig reads the configuration from the YAML file
func readConfig(path string) (*fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// apply copies file settings into opts for every flag not set explicitly.
func (c *fileConfig) apply(opts *options, set map[string]bool) {
	if c.RowGap != nil && !set["row-gap"] {
		opts.rowGap = *c.RowGap
	}
	if c.CellGap != nil && !set["cell-gap"] {
		opts.cellGap = *c.CellGap
	}
	if c.KeepFirstChar != nil && !set["keep-first"] {
		opts.keepFirst = *c.KeepFirstChar
	}
	if c.Normalize != nil && !set["normalize"] {
		opts.normalize = *c.Normalize
	}
	if c.Format != "" && !set["format"] {
		opts.format = c.Format
	}
	if len(c.Pages) > 0 && !set["p"] {
		opts.pages = append([]int(nil), c.Pages...)
	}
}
