// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"
)

// X11-style modifier masks. Perch only needs them to encode
// floating_modifier; individual bindings keep their key tokens as typed.
const (
	ModShift uint32 = 1 << iota
	ModCaps
	ModCtrl
	ModMod1
	ModMod2
	ModMod3
	ModMod4
	ModMod5
)

var modifierMasks = map[string]uint32{
	"shift":   ModShift,
	"caps":    ModCaps,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModMod1,
	"mod1":    ModMod1,
	"mod2":    ModMod2,
	"mod3":    ModMod3,
	"mod4":    ModMod4,
	"logo":    ModMod4,
	"mod5":    ModMod5,
}

// parseModifiers turns a +-separated combo like Mod4+Shift into a mask.
func parseModifiers(combo string) (uint32, error) {
	var mask uint32
	for tok := range strings.SplitSeq(combo, "+") {
		m, ok := modifierMasks[strings.ToLower(tok)]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", tok)
		}
		mask |= m
	}
	return mask, nil
}

// splitKeys breaks a binding combo into its key tokens, order preserved.
func splitKeys(combo string) []string {
	return strings.Split(combo, "+")
}
