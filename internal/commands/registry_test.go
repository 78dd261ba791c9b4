// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perch-wm/perch/internal/config"
)

func TestResolve(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name  string
		class config.Class
		known bool
	}{
		{"set", config.ClassImmediate, true},
		{"bindsym", config.ClassImmediate, true},
		{"gaps", config.ClassImmediate, true},
		{"exec", config.ClassDeferred, true},
		{"exec_always", config.ClassDeferred, true},
		{"workspace", config.ClassDeferred, true},
		{"focus", config.ClassRuntimeOnly, true},
		{"reload", config.ClassRuntimeOnly, true},
		{"frobnicate", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, known := r.Resolve(tt.name)
			assert.Equal(t, tt.known, known)
			if tt.known {
				assert.Equal(t, tt.class, class)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	cfg := config.NewConfig()

	require.NoError(t, r.Execute(cfg, "set $mod Mod4"))
	assert.Equal(t, "Mod4", cfg.Symbols[0].Value)

	assert.Error(t, r.Execute(cfg, ""))
	assert.Error(t, r.Execute(cfg, "frobnicate now"))
	// Runtime-only commands have no config-context handler.
	assert.Error(t, r.Execute(cfg, "kill"))
	// Handler errors come back wrapped with the command name.
	err := r.Execute(cfg, "gaps inner much")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gaps")
}
