// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/perch-wm/perch/internal/config"
	"github.com/perch-wm/perch/internal/meta"
)

// checkCommandAction validates a config file: it runs a full non-live parse
// and reports the outcome plus a short inventory of what was built. The
// parse never aborts early, so every problem in the file gets logged in one
// run.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	path := pathArg(cmd)
	if path == "" {
		found, err := config.FindConfigPath()
		if err != nil {
			return err
		}
		path = found
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("unable to stat %s: %w", path, err)
	}

	cfg, ok, err := parseConfigFile(path)
	if err != nil {
		return err
	}

	bindings := 0
	for _, mode := range cfg.Modes {
		bindings += len(mode.Bindings)
	}

	fmt.Fprintf(os.Stdout, "config:     %s (%s)\n", path, humanize.Bytes(uint64(info.Size())))
	fmt.Fprintf(os.Stdout, "modes:      %d (%d bindings)\n", len(cfg.Modes), bindings)
	fmt.Fprintf(os.Stdout, "variables:  %d\n", len(cfg.Symbols))
	fmt.Fprintf(os.Stdout, "deferred:   %d\n", len(cfg.CmdQueue))
	fmt.Fprintf(os.Stdout, "workspaces: %d mapped, %d outputs configured\n",
		len(cfg.WorkspaceOutputs), len(cfg.OutputConfigs))

	if !ok {
		return fmt.Errorf("config check failed for %s", path)
	}

	fmt.Fprintln(os.Stdout, "result:     OK")
	return nil
}

// checkCommandBuilder constructs the cli.Command for "check", wiring
// metadata, flags, and the action handler.
func checkCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate a config file",
		UsageText: "perch check [path]",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: checkCommandAction,
	}
}
