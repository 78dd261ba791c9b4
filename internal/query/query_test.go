// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const doc = `{
  "symbols": [
    {"name": "$mod", "value": "Mod4"},
    {"name": "$term", "value": "foot"}
  ],
  "modes": [
    {"name": "default", "bindings": [
      {"keys": ["Mod4", "Return"], "command": "exec foot"}
    ]},
    {"name": "resize", "bindings": []}
  ],
  "gaps_inner": 10,
  "output_configs": [
    {"name": "HDMI-A-1"}
  ]
}`

func TestDrill(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"scalar", "gaps_inner", "10"},
		{"indexed array", "symbols[1].value", "foot"},
		{"nested index", "modes[0].bindings[0].command", "exec foot"},
		{"single element unwraps", "output_configs.name", "HDMI-A-1"},
		{"star keeps list", "modes[*]", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Drill(doc, tt.path)
			if tt.want != "" {
				assert.Equal(t, tt.want, got.String())
			} else {
				assert.True(t, got.IsArray())
			}
		})
	}
}

func TestDrillMisses(t *testing.T) {
	for _, path := range []string{
		"symbols[9].name", // out of range
		"modes[x].name",   // malformed index
		"gaps_inner[0]",   // index into a scalar
		"no..path",        // empty segment
	} {
		assert.False(t, Drill(doc, path).Exists(), path)
	}
}
