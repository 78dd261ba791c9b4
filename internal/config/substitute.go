// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/perch-wm/perch/internal/log"
)

// sigil marks the start of a variable reference. There is no escaping
// mechanism for a literal sigil in config text.
const sigil = '$'

// maxExpansions bounds the number of splices Substitute performs on a single
// line. The scan deliberately re-tests variables against freshly inserted
// text, so a variable whose value references itself (set $a $a$a) would
// otherwise grow the line without bound. When the cap trips, substitution
// stops and the partially expanded line is returned.
const maxExpansions = 64

// Substitute rewrites a raw config line, replacing every recognized variable
// reference with its value. At each sigil position every variable is tested
// in insertion order for a literal prefix match; on a match the reference is
// spliced out and the remaining variables keep matching against the mutated
// string at the same position. The scan then advances one byte, so it does
// not skip past inserted text and values containing references get expanded
// on later positions.
func (c *Config) Substitute(line string) string {
	expansions := 0
	for i := 0; i < len(line); i++ {
		if line[i] != sigil {
			continue
		}
		for _, v := range c.Symbols {
			if v.Name == "" || !strings.HasPrefix(line[i:], v.Name) {
				continue
			}
			if expansions >= maxExpansions {
				log.Warnf("variable expansion limit (%d) reached, output truncated at %q", maxExpansions, v.Name)
				return line
			}
			line = line[:i] + v.Value + line[i+len(v.Name):]
			expansions++
		}
	}
	return line
}
