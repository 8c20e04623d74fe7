// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Svd2rdf converts CMSIS-SVD device descriptions to flat register
// description catalogs.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/embeddedgo/svd2rdf/internal/config"
	"github.com/embeddedgo/svd2rdf/internal/log"
	"github.com/embeddedgo/svd2rdf/internal/util"
	"github.com/embeddedgo/svd2rdf/rdf"
)

const version = "0.1.0"

type CLI struct {
	Convert Convert   `cmd:"" help:"Convert SVD files to catalogs."`
	Hex     Hex       `cmd:"" help:"Write the register reset values as an Intel HEX image."`
	Show    Show      `cmd:"" help:"List catalog elements."`
	Config  ConfigCmd `cmd:"" help:"Print or write the effective configuration."`
	Version Version   `cmd:"" help:"Show svd2rdf version."`

	Log string `help:"${log_help}" placeholder:"mod0,mod1,..."`
}

type Version struct{}

func (Version) Run() error {
	fmt.Printf("svd2rdf %s (catalog schema %s)\n", version, rdf.SchemaVersion)
	return nil
}

func vars(cfg *config.Config) kong.Vars {
	return kong.Vars{
		"log_help":   "Enable debug logging for the specified modules (all, no, cli, svd, rdf).",
		"format":     cfg.Convert.Format,
		"indent":     strconv.Itoa(cfg.Convert.Indent),
		"width":      strconv.FormatUint(uint64(cfg.Convert.Width), 10),
		"memories":   strconv.FormatBool(cfg.Convert.Memories),
		"jobs":       strconv.Itoa(cfg.Convert.Jobs),
		"big_endian": strconv.FormatBool(cfg.Hex.BigEndian),
	}
}

func parseArgs(cfg *config.Config, args []string) (*CLI, *kong.Context) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("svd2rdf"),
		kong.Description("Convert CMSIS-SVD device descriptions to register description catalogs."),
		kong.UsageOnError(),
		vars(cfg))
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(args)
	util.FatalErr("failed to parse command line", err)
	return &cli, ctx
}

func main() {
	cfg, err := config.Load(config.Path())
	util.FatalErr("config", err)
	util.FatalErr("log", log.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Formatter))

	cli, ctx := parseArgs(&cfg, os.Args[1:])
	mask, err := log.ParseModules(cli.Log)
	util.FatalErr("log", err)
	log.EnableDebugModules(mask)

	util.FatalErr(ctx.Command(), ctx.Run(&cfg))
}
