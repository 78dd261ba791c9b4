// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/perch-wm/perch/internal/config"
	"github.com/perch-wm/perch/internal/log"
)

// handlerFunc mutates cfg according to the arguments following the command
// name. A returned error marks the line as failed; the parse loop keeps
// going regardless.
type handlerFunc func(cfg *config.Config, args []string) error

type handler struct {
	name  string
	class config.Class
	fn    handlerFunc
}

// Registry resolves command names to handlers. It implements
// config.Dispatcher.
type Registry struct {
	handlers map[string]*handler
}

// NewRegistry returns a Registry with the full perch command set installed.
func NewRegistry() *Registry {
	r := &Registry{handlers: map[string]*handler{}}

	// Immediate: plain config mutations.
	r.register("set", config.ClassImmediate, cmdSet)
	r.register("bindsym", config.ClassImmediate, cmdBindsym)
	r.register("mode", config.ClassImmediate, cmdMode)
	r.register("output", config.ClassImmediate, cmdOutput)
	r.register("focus_follows_mouse", config.ClassImmediate, cmdFocusFollowsMouse)
	r.register("mouse_warping", config.ClassImmediate, cmdMouseWarping)
	r.register("workspace_auto_back_and_forth", config.ClassImmediate, cmdAutoBackAndForth)
	r.register("gaps", config.ClassImmediate, cmdGaps)
	r.register("floating_modifier", config.ClassImmediate, cmdFloatingModifier)
	r.register("default_orientation", config.ClassImmediate, cmdDefaultOrientation)
	r.register("workspace_layout", config.ClassImmediate, cmdWorkspaceLayout)

	// Deferred: require a live compositor, queued during an initial load.
	r.register("exec", config.ClassDeferred, cmdExec)
	r.register("exec_always", config.ClassDeferred, cmdExec)
	r.register("workspace", config.ClassDeferred, cmdWorkspace)

	// Runtime-only: legal from a key binding, never from a config file.
	for _, name := range []string{
		"exit", "focus", "fullscreen", "kill", "layout",
		"move", "reload", "resize", "splith", "splitv",
	} {
		r.register(name, config.ClassRuntimeOnly, nil)
	}

	return r
}

func (r *Registry) register(name string, class config.Class, fn handlerFunc) {
	r.handlers[name] = &handler{name: name, class: class, fn: fn}
}

// Resolve implements config.Dispatcher.
func (r *Registry) Resolve(name string) (config.Class, bool) {
	h, ok := r.handlers[name]
	if !ok {
		return 0, false
	}
	return h.class, true
}

// Execute implements config.Dispatcher. The line arrives with variables
// already substituted; it is tokenized on whitespace and handed to the
// resolved handler.
func (r *Registry) Execute(cfg *config.Config, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return fmt.Errorf("empty command line")
	}

	h, ok := r.handlers[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", args[0])
	}
	if h.fn == nil {
		return fmt.Errorf("command %q is only valid from a key binding", h.name)
	}

	log.Tracef("executing %q", line)
	if err := h.fn(cfg, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", h.name, err)
	}
	return nil
}
