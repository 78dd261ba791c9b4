// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/perch-wm/perch/internal/differ"
	"github.com/perch-wm/perch/internal/meta"
	"github.com/perch-wm/perch/internal/output"
)

// diffCommandAction parses two config files and renders the semantic
// difference between their models, previewing what a live reload from the
// first to the second would change.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected two config paths")
	}

	var docs [2][]byte
	for i, path := range []string{cmd.Args().Get(0), cmd.Args().Get(1)} {
		cfg, ok, err := parseConfigFile(path)
		if err != nil {
			return err
		}
		if !ok {
			log.Warnf("config %s parsed with failures", path)
		}
		if docs[i], err = output.MarshalJSON(cfg); err != nil {
			return err
		}
	}

	_, err := differ.Diff(docs[0], docs[1], cmd.Bool("color"), os.Stdout)
	return err
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and the action handler.
func diffCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "diff two config files semantically",
		UsageText: "perch diff <before> <after>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewColorFlag(),
		},
		Action: diffCommandAction,
	}
}
