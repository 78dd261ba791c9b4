// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/perch-wm/perch/internal/commands"
	"github.com/perch-wm/perch/internal/config"
	"github.com/perch-wm/perch/internal/meta"
)

// GetMeta retrieves the shared Meta placed on a command at build time.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// newManager wires a Manager to the standard command registry. The tooling
// never has a compositor attached, so the arrange hook is nil.
func newManager() *config.Manager {
	return config.NewManager(commands.NewRegistry(), nil)
}

// parseConfigFile runs a non-live load of the file at path (or the standard
// search locations when path is empty) and returns the resulting Config and
// overall parse outcome. Only a missing or unreadable file is an error;
// handler-level failures are reflected in ok and Config.Failed.
func parseConfigFile(path string) (cfg *config.Config, ok bool, err error) {
	mgr := newManager()

	if path == "" {
		if path, err = config.FindConfigPath(); err != nil {
			return nil, false, err
		}
	}

	f, statErr := os.Open(path)
	if statErr != nil {
		return nil, false, fmt.Errorf("unable to open %s for reading: %w", path, statErr)
	}
	defer f.Close()

	ok = mgr.ReadConfig(f, false)
	return mgr.Active(), ok, nil
}

// pathArg returns the first positional argument, an explicit config path.
func pathArg(cmd *cli.Command) string {
	return cmd.Args().First()
}

// OutputValidator rejects unknown values for the -o flag.
func OutputValidator(value string) error {
	switch value {
	case "json", "yaml", "text":
		return nil
	default:
		return fmt.Errorf("invalid output format %q", value)
	}
}
