// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config implements perch's configuration lifecycle: locating the
// config file, parsing it line by line into an in-memory model (variables,
// key-binding modes, workspace/output mappings, global flags), and swapping
// that model in as the process-wide active configuration during a live
// reload.
//
// The file format is the classic sway/i3 line-oriented one. Search order for
// an unspecified path:
//   - $HOME/.sway/config
//   - $XDG_CONFIG_HOME/sway/config ($HOME/.config when unset)
//   - /etc/sway/config
//   - $HOME/.i3/config
//   - $XDG_CONFIG_HOME/i3/config
//   - /etc/i3/config
//   - each entry of $XDG_CONFIG_DIRS with /sway/config appended
//
// A reload installs the new Config as the active one before parsing starts
// and never rolls back: a failed parse leaves the new Config active with
// Failed set. See Manager for the exact protocol.
package config
