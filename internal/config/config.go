// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the svd2rdf configuration file.
package config

import (
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
)

type Config struct {
	Convert ConvertConfig `toml:"convert"`
	Hex     HexConfig     `toml:"hex"`
	Log     LogConfig     `toml:"log"`
}

type ConvertConfig struct {
	Format   string `toml:"format"`
	Indent   int    `toml:"indent"`
	Width    uint32 `toml:"width"`
	Memories bool   `toml:"memories"`
	Jobs     int    `toml:"jobs"`
}

type HexConfig struct {
	BigEndian bool `toml:"big_endian"`
}

type LogConfig struct {
	Level     string `toml:"level"`
	Formatter string `toml:"formatter"`
}

// EnvPath is the environment variable that overrides the configuration
// file path.
const EnvPath = "SVD2RDF_CONFIG"

const defaultFilename = "svd2rdf.toml"

func Default() Config {
	return Config{
		Convert: ConvertConfig{Format: "json", Indent: 2, Width: 32},
		Log:     LogConfig{Level: "warning", Formatter: "text"},
	}
}

// Path returns the configuration file path.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return defaultFilename
}

// Load reads the configuration from the named file on top of the defaults.
// A missing file is not an error.
func Load(name string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(name, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), errors.Wrap(err, name)
	}
	return cfg, nil
}

// Save writes cfg to the named file.
func Save(name string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(name, buf, 0644)
}
