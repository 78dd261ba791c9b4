// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		symbols [][2]string
		line    string
		want    string
	}{
		{
			name:    "two variables",
			symbols: [][2]string{{"$a", "1"}, {"$b", "2"}},
			line:    "$a-$b",
			want:    "1-2",
		},
		{
			name:    "no symbols",
			symbols: nil,
			line:    "$a-$b",
			want:    "$a-$b",
		},
		{
			name:    "no references",
			symbols: [][2]string{{"$a", "1"}},
			line:    "bindsym Mod4+Return exec foot",
			want:    "bindsym Mod4+Return exec foot",
		},
		{
			name:    "first match wins on shared prefix",
			symbols: [][2]string{{"$a", "1"}, {"$ab", "2"}},
			line:    "$ab",
			want:    "1b",
		},
		{
			name:    "value referencing another variable expands at the same position",
			symbols: [][2]string{{"$a", "$b"}, {"$b", "x"}},
			line:    "$a",
			want:    "x",
		},
		{
			name:    "inserted text is not skipped",
			symbols: [][2]string{{"$greet", "hello $who"}, {"$who", "world"}},
			line:    "say $greet",
			want:    "say hello world",
		},
		{
			name:    "repeated reference",
			symbols: [][2]string{{"$mod", "Mod4"}},
			line:    "bindsym $mod+$mod q",
			want:    "bindsym Mod4+Mod4 q",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			for _, s := range tt.symbols {
				cfg.SetVariable(s[0], s[1])
			}
			assert.Equal(t, tt.want, cfg.Substitute(tt.line))
		})
	}
}

// A variable whose value contains its own reference would grow the line
// forever; the engine stops after maxExpansions splices and returns what it
// has.
func TestSubstituteSelfReference(t *testing.T) {
	cfg := NewConfig()
	cfg.SetVariable("$a", "$a$a")

	got := cfg.Substitute("$a")

	// Each splice grows the line by one "$a"; the cap leaves exactly
	// maxExpansions+1 copies.
	assert.Equal(t, strings.Repeat("$a", maxExpansions+1), got)
}

func TestSubstituteSigilOnly(t *testing.T) {
	cfg := NewConfig()
	cfg.SetVariable("$a", "1")

	// A bare sigil matches nothing and survives untouched; there is no
	// escaping mechanism.
	assert.Equal(t, "$ 1", cfg.Substitute("$ $a"))
}
