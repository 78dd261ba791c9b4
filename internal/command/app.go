// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/perch-wm/perch/internal/meta"
)

// InitApp builds the perch CLI: global flags plus the config tooling
// subcommands. Shared runtime metadata travels on each command's Metadata
// map, the way every action retrieves it through GetMeta.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	m := meta.Meta{
		Args:        args,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "perch",
		Usage: "Perch window manager config tooling",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "perch version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		checkCommandBuilder(m),
		dumpCommandBuilder(m),
		diffCommandBuilder(m),
		pathsCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
