// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log provides module-tagged logging on top of logrus. Warnings and
// errors are always emitted, debug and info messages only for the modules
// enabled with EnableDebugModules.
package log

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/Sirupsen/logrus.v0"
)

type Level = logrus.Level

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

type ModuleMask uint64
type Module uint

const ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF

const (
	ModCLI Module = iota + 1
	ModSVD
	ModRDF

	endStandardMods
)

var modDebugMask ModuleMask

var modNames = [endStandardMods]string{"<error>", "cli", "svd", "rdf"}

// ModuleNames returns the names accepted by ModuleByName.
func ModuleNames() []string {
	return append([]string(nil), modNames[1:]...)
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if idx != 0 && s == name {
			return Module(idx), true
		}
	}
	return Module(0xFFFFFFFF), false
}

// ParseModules converts a comma separated list of module names into a mask.
// "all" selects every module, "no" or an empty list selects none.
func ParseModules(list string) (ModuleMask, error) {
	var mask ModuleMask
	for _, name := range strings.Split(list, ",") {
		switch name = strings.TrimSpace(name); name {
		case "", "no":
		case "all":
			mask |= ModuleMaskAll
		default:
			m, ok := ModuleByName(name)
			if !ok {
				return 0, errors.Errorf("invalid log module %q", name)
			}
			mask |= m.Mask()
		}
	}
	return mask, nil
}

func EnableDebugModules(mask ModuleMask) {
	modDebugMask |= mask
	if mask != 0 {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func DisableDebugModules(mask ModuleMask) {
	modDebugMask &^= mask
}

// Setup configures the underlying logger. Level is a logrus level name,
// formatter is "text" or "json".
func Setup(w io.Writer, level, formatter string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetLevel(lvl)
	switch formatter {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log formatter %q", formatter)
	}
	if w != nil {
		logrus.SetOutput(w)
	}
	return nil
}

func (mod Module) String() string {
	if int(mod) < len(modNames) {
		return modNames[mod]
	}
	return modNames[0]
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Enabled(level Level) bool {
	return level <= WarnLevel || modDebugMask&mod.Mask() != 0
}

func (mod Module) WithFields(fields Fields) Entry {
	return Entry{mod: mod}.WithFields(fields)
}

func (mod Module) WithField(key string, value any) Entry {
	return Entry{mod: mod}.WithField(key, value)
}

func (mod Module) Debugf(format string, args ...any) {
	Entry{mod: mod}.Debugf(format, args...)
}

func (mod Module) Infof(format string, args ...any) {
	Entry{mod: mod}.Infof(format, args...)
}

func (mod Module) Warnf(format string, args ...any) {
	Entry{mod: mod}.Warnf(format, args...)
}

func (mod Module) Errorf(format string, args ...any) {
	Entry{mod: mod}.Errorf(format, args...)
}

func (mod Module) Fatalf(format string, args ...any) {
	Entry{mod: mod}.Fatalf(format, args...)
}
