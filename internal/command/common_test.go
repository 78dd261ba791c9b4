// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/perch-wm/perch/internal/meta"
)

func TestParseConfigFile(t *testing.T) {
	cfg, ok, err := parseConfigFile(filepath.Join("testdata", "basic.config"))

	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, cfg.Failed)
	require.Len(t, cfg.Symbols, 1)
	assert.Len(t, cfg.DefaultMode().Bindings, 1)
	assert.Equal(t, 8, cfg.GapsInner)
	// Compositor-ready lines stay queued in a non-live parse.
	assert.Len(t, cfg.CmdQueue, 2)
}

func TestParseConfigFileWithFailures(t *testing.T) {
	cfg, ok, err := parseConfigFile(filepath.Join("testdata", "broken.config"))

	// A handler failure is not an error: the partial model comes back with
	// the failure reflected in ok and the Failed flag.
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, cfg.Failed)
	// Lines after the failing one still applied.
	assert.Len(t, cfg.DefaultMode().Bindings, 1)
}

func TestParseConfigFileMissing(t *testing.T) {
	_, _, err := parseConfigFile(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestGetMeta(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))

	m := meta.Meta{StartingDir: "/tmp"}
	cmd := &cli.Command{Metadata: map[string]any{"meta": m}}
	assert.Equal(t, m, GetMeta(cmd))
}

func TestOutputValidator(t *testing.T) {
	for _, valid := range []string{"json", "yaml", "text"} {
		assert.NoError(t, OutputValidator(valid))
	}
	assert.Error(t, OutputValidator("toml"))
	assert.Error(t, OutputValidator(""))
}
