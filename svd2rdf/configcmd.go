// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/embeddedgo/svd2rdf/internal/config"
	"github.com/embeddedgo/svd2rdf/internal/log"
)

type ConfigCmd struct {
	Write bool `help:"Write the configuration to the configuration file instead of printing it."`
}

func (c *ConfigCmd) Run(cfg *config.Config) error {
	if !c.Write {
		return toml.NewEncoder(os.Stdout).Encode(cfg)
	}
	path := config.Path()
	if err := config.Save(path, *cfg); err != nil {
		return err
	}
	log.ModCLI.WithField("file", path).Infof("configuration written")
	return nil
}
