// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/perch-wm/perch/internal/meta"
	"github.com/perch-wm/perch/internal/output"
	"github.com/perch-wm/perch/internal/query"
)

// dumpCommandAction parses a config file and emits the resulting model. A
// --query drills into the JSON form instead of dumping everything.
func dumpCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	cfg, ok, err := parseConfigFile(pathArg(cmd))
	if err != nil {
		return err
	}
	if !ok {
		// A failed parse still produced a (partial) model; dump it but say so.
		log.Warnf("config parsed with failures, dump may be partial")
	}

	if q := cmd.String("query"); q != "" {
		doc, err := output.MarshalJSON(cfg)
		if err != nil {
			return err
		}
		result := query.Drill(string(doc), q)
		if !result.Exists() {
			return fmt.Errorf("query %q matched nothing", q)
		}
		fmt.Fprintln(os.Stdout, result.String())
		return nil
	}

	return output.Spit(cfg, cmd.String("output"), cmd.Bool("color"), os.Stdout)
}

// dumpCommandBuilder constructs the cli.Command for "dump", wiring metadata,
// flags, and the action handler.
func dumpCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "dump the parsed config model",
		UsageText: "perch dump [path] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewOutputFlag("dump"),
			NewColorFlag(),
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "dot path into the dumped model (modes[1].bindings[0].command)",
			},
		},
		Action: dumpCommandAction,
	}
}
