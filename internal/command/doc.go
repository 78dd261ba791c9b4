// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for perch's config tooling.
// It wires flags, validators and actions for the check, dump, diff and
// paths subcommands.
package command
