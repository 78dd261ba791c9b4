// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders a parsed configuration for the CLI: JSON and YAML
// for tooling, tabular text for humans.
package output
