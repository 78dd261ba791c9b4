// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/perch-wm/perch/internal/config"
	"github.com/perch-wm/perch/internal/meta"
)

// pathsCommandAction lists every candidate config location in search order
// and marks the one that resolves.
func pathsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	resolved, err := config.FindConfigPath()
	if err != nil && !errors.Is(err, config.ErrNoConfigFile) {
		return err
	}

	for _, path := range config.CandidatePaths() {
		marker := " "
		if path == resolved {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", marker, path)
	}

	if resolved == "" {
		return config.ErrNoConfigFile
	}
	return nil
}

// pathsCommandBuilder constructs the cli.Command for "paths".
func pathsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "paths",
		Usage:     "show config file search locations",
		UsageText: "perch paths",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: pathsCommandAction,
	}
}
