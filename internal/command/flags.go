// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"path/filepath"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewOutputFlag constructs the -o flag, namespaced to a subcommand so that
// perch.yaml can carry per-command defaults (dump.output: yaml).
func NewOutputFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (json, yaml, text)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("PERCH_OUTPUT"),
		),
		Value: "text",
		Validator: func(value string) error {
			return OutputValidator(value)
		},
	}

	return NameSpacedValueChainFlagFromPrefsFile(ns, flag)
}

// NewColorFlag constructs the -c flag shared by the table and diff
// renderers.
func NewColorFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored output",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("PERCH_COLOR"),
		),
		Value: false,
	}
}

// NameSpacedValueChainFlagFromPrefsFile adds namespaced and global prefs
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromPrefsFile(ns string, flag *cli.StringFlag) *cli.StringFlag {
	path := prefsFile()
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// prefsFile returns the path of the tooling's own preferences file. The
// PERCH_PREFS env variable overrides the platform config directory.
func prefsFile() string {
	if p := os.Getenv("PERCH_PREFS"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "perch.yaml")
}
