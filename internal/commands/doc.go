// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package commands is the command subsystem the config parse loop delegates
// to: a registry mapping a line's leading token to a handler, each handler
// declaring an execution class (immediate, deferred until the compositor is
// ready, or runtime-only) and mutating the Config it is executed against.
package commands
