// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

// Package runtime is the compositor-readiness collaborator: once the host
// runtime is up it drains the deferred command queue a load left behind.
package runtime

import (
	"github.com/perch-wm/perch/internal/config"
	"github.com/perch-wm/perch/internal/log"
)

// Ready marks cfg active and executes its deferred queue in encounter
// order. The queue itself never executes anything; this is the one place it
// gets drained. Failures mark the Config failed but do not stop the drain.
// Returns false when any queued line failed.
func Ready(cfg *config.Config, dispatch config.Dispatcher) bool {
	cfg.Active = true
	return Drain(cfg, dispatch)
}

// Drain executes and clears cfg.CmdQueue in order.
func Drain(cfg *config.Config, dispatch config.Dispatcher) bool {
	ok := true
	for _, line := range cfg.CmdQueue {
		log.Debugf("Executing deferred command %q", line)
		if err := dispatch.Execute(cfg, line); err != nil {
			log.Errorf("Deferred command failed %q: %v", line, err)
			cfg.Failed = true
			ok = false
		}
	}
	cfg.CmdQueue = nil
	return ok
}
