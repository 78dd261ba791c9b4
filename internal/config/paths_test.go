// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_DIRS", "/opt/xdg:/usr/local/xdg")

	got := CandidatePaths()

	want := []string{
		filepath.Join(home, ".sway/config"),
		filepath.Join(home, ".config/sway/config"),
		"/etc/sway/config",
		filepath.Join(home, ".i3/config"),
		filepath.Join(home, ".config/i3/config"),
		"/etc/i3/config",
		"/opt/xdg/sway/config",
		"/usr/local/xdg/sway/config",
	}
	assert.Equal(t, want, got)
}

func TestCandidatePathsExplicitXDGConfigHome(t *testing.T) {
	home := t.TempDir()
	xdg := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("XDG_CONFIG_DIRS", "")

	got := CandidatePaths()
	assert.Equal(t, filepath.Join(xdg, "sway/config"), got[1])
	assert.Equal(t, filepath.Join(xdg, "i3/config"), got[4])
}

func TestFindConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_DIRS", "")

	// The highest-priority candidate wins.
	swayDir := filepath.Join(home, ".sway")
	require.NoError(t, os.MkdirAll(swayDir, 0o755))
	path := filepath.Join(swayDir, "config")
	require.NoError(t, os.WriteFile(path, []byte("# perch\n"), 0o644))

	got, err := FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindConfigPathXDGConfigDirs(t *testing.T) {
	home := t.TempDir()
	xdgDir := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CONFIG_DIRS", xdgDir)

	require.NoError(t, os.MkdirAll(filepath.Join(xdgDir, "sway"), 0o755))
	path := filepath.Join(xdgDir, "sway/config")
	require.NoError(t, os.WriteFile(path, []byte("# perch\n"), 0o644))

	got, err := FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFileReadable(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, fileReadable(filepath.Join(dir, "absent")))
	assert.False(t, fileReadable(dir))

	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, fileReadable(path))
}
