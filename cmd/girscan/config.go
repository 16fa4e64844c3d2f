package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jacoelho/gir"
)

// config is the optional YAML file read with -config. Flags given on the
// command line override it.
type config struct {
	Dir             string   `yaml:"dir"`
	URL             string   `yaml:"url"`
	Ignore          []string `yaml:"ignore"`
	Concurrency     int      `yaml:"concurrency"`
	CacheSize       int      `yaml:"cache_size"`
	MaxDepth        int      `yaml:"max_depth"`
	MaxAttrs        int      `yaml:"max_attrs"`
	StrictFileNames bool     `yaml:"strict_file_names"`
}

func readConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.Dir != "" && c.URL != "" {
		return fmt.Errorf("dir and url are mutually exclusive")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0")
	}
	return c.options().Validate()
}

func (c config) options() gir.Options {
	opts := gir.NewOptions().
		WithStrictFileNames(c.StrictFileNames)
	if c.Concurrency != 0 {
		opts = opts.WithConcurrency(c.Concurrency)
	}
	if c.MaxDepth != 0 {
		opts = opts.WithMaxDepth(c.MaxDepth)
	}
	if c.MaxAttrs != 0 {
		opts = opts.WithMaxAttrs(c.MaxAttrs)
	}
	return opts
}

func (c config) source() gir.Source {
	if c.URL != "" {
		return gir.URLSource(c.URL)
	}
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	return gir.DirSource(dir)
}
