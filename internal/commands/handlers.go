// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/perch-wm/perch/internal/config"
	"github.com/perch-wm/perch/internal/log"
)

// cmdSet records a variable. The name keeps its leading $ and is matched as
// a literal prefix during substitution. Redefining a name updates the
// existing record in place, preserving insertion order.
//
// Lines reach handlers with substitution already applied, so redefining a
// variable whose reference appears on its own set line is inherently
// fragile; callers get whatever the rewritten line says.
func cmdSet(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("expected name and value")
	}
	name := args[0]
	if !strings.HasPrefix(name, "$") || len(name) == 1 {
		return fmt.Errorf("variable name %q must start with $", name)
	}
	cfg.SetVariable(name, strings.Join(args[1:], " "))
	return nil
}

// cmdBindsym appends a binding to the current mode. The first argument is
// the key combo, everything after it the command to fire.
func cmdBindsym(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("expected key combo and command")
	}
	binding := &config.Binding{
		Keys:    splitKeys(args[0]),
		Command: strings.Join(args[1:], " "),
	}
	cfg.CurrentMode.Bindings = append(cfg.CurrentMode.Bindings, binding)
	return nil
}

// cmdMode opens a mode block: mode "resize" { — the quotes and trailing
// brace are optional. The mode is created on first mention and becomes
// current until the block closes.
func cmdMode(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected mode name")
	}
	if args[len(args)-1] == "{" {
		args = args[:len(args)-1]
	}
	name := strings.Trim(strings.Join(args, " "), `"`)
	if name == "" {
		return fmt.Errorf("expected mode name")
	}
	cfg.EnterMode(name)
	return nil
}

// cmdWorkspace handles both forms of the workspace command. The mapping form
// (workspace <name> output <output>) appends a record; the switching form
// needs a live compositor and is a no-op for the config core beyond logging.
func cmdWorkspace(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected workspace name")
	}
	if len(args) == 3 && args[1] == "output" {
		cfg.WorkspaceOutputs = append(cfg.WorkspaceOutputs, &config.WorkspaceOutput{
			Workspace: args[0],
			Output:    args[2],
		})
		return nil
	}
	log.Debugf("workspace switch to %q requested", strings.Join(args, " "))
	return nil
}

// cmdOutput appends a per-output settings record. The settings are opaque
// here; the compositor interprets them.
func cmdOutput(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected output name")
	}
	cfg.OutputConfigs = append(cfg.OutputConfigs, &config.OutputConfig{
		Name:     args[0],
		Settings: args[1:],
	})
	return nil
}

func cmdFocusFollowsMouse(cfg *config.Config, args []string) error {
	v, err := oneBool(args)
	if err != nil {
		return err
	}
	cfg.FocusFollowsMouse = v
	return nil
}

func cmdMouseWarping(cfg *config.Config, args []string) error {
	v, err := oneBool(args)
	if err != nil {
		return err
	}
	cfg.MouseWarping = v
	return nil
}

func cmdAutoBackAndForth(cfg *config.Config, args []string) error {
	v, err := oneBool(args)
	if err != nil {
		return err
	}
	cfg.AutoBackAndForth = v
	return nil
}

// cmdGaps sets gap sizes: gaps inner <px>, gaps outer <px>, or gaps <px>
// for both.
func cmdGaps(cfg *config.Config, args []string) error {
	switch len(args) {
	case 1:
		px, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid gap size %q", args[0])
		}
		cfg.GapsInner = px
		cfg.GapsOuter = px
		return nil
	case 2:
		px, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid gap size %q", args[1])
		}
		switch args[0] {
		case "inner":
			cfg.GapsInner = px
		case "outer":
			cfg.GapsOuter = px
		default:
			return fmt.Errorf("expected inner or outer, got %q", args[0])
		}
		return nil
	default:
		return fmt.Errorf("expected [inner|outer] <px>")
	}
}

func cmdFloatingModifier(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a modifier combo")
	}
	mask, err := parseModifiers(args[0])
	if err != nil {
		return err
	}
	cfg.FloatingMod = mask
	return nil
}

func cmdDefaultOrientation(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected horizontal, vertical or auto")
	}
	switch args[0] {
	case "horizontal":
		cfg.DefaultOrientation = config.LayoutHorizontal
	case "vertical":
		cfg.DefaultOrientation = config.LayoutVertical
	case "auto":
		cfg.DefaultOrientation = config.LayoutNone
	default:
		return fmt.Errorf("expected horizontal, vertical or auto, got %q", args[0])
	}
	return nil
}

func cmdWorkspaceLayout(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected default, stacking or tabbed")
	}
	switch args[0] {
	case "default":
		cfg.DefaultLayout = config.LayoutNone
	case "stacking":
		cfg.DefaultLayout = config.LayoutStacked
	case "tabbed":
		cfg.DefaultLayout = config.LayoutTabbed
	default:
		return fmt.Errorf("expected default, stacking or tabbed, got %q", args[0])
	}
	return nil
}

// cmdExec asks the compositor to spawn a process. Process management lives
// outside the config core, so execution here is a handoff: the line is
// acknowledged and logged. By the time this runs the compositor is live
// (deferred lines are drained by the runtime package).
func cmdExec(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected a command to run")
	}
	log.Debugf("exec %q", strings.Join(args, " "))
	return nil
}

func oneBool(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("expected exactly one argument")
	}
	switch strings.ToLower(args[0]) {
	case "yes", "on", "true", "enable", "enabled", "1":
		return true, nil
	case "no", "off", "false", "disable", "disabled", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", args[0])
	}
}
