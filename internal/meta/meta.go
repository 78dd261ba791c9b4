// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
)

// Meta contains runtime metadata shared by commands. It carries the raw CLI
// arguments, the context, an explicit config file path when one was given on
// the command line, and the starting working directory.
type Meta struct {
	Args        []string
	Context     context.Context
	ConfigPath  string
	StartingDir string
}
