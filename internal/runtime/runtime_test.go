// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package runtime

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perch-wm/perch/internal/commands"
	"github.com/perch-wm/perch/internal/config"
)

type recordingDispatcher struct {
	executed []string
	failOn   string
}

func (d *recordingDispatcher) Resolve(name string) (config.Class, bool) {
	return config.ClassImmediate, true
}

func (d *recordingDispatcher) Execute(cfg *config.Config, line string) error {
	d.executed = append(d.executed, line)
	if d.failOn != "" && strings.HasPrefix(line, d.failOn) {
		return fmt.Errorf("scripted failure")
	}
	return nil
}

func TestReadyDrainsInOrder(t *testing.T) {
	d := &recordingDispatcher{}
	cfg := config.NewConfig()
	cfg.CmdQueue = []string{"exec a", "workspace 1 output X", "exec b"}

	ok := Ready(cfg, d)

	assert.True(t, ok)
	assert.True(t, cfg.Active)
	assert.Equal(t, []string{"exec a", "workspace 1 output X", "exec b"}, d.executed)
	assert.Empty(t, cfg.CmdQueue)
}

func TestDrainKeepsGoingOnFailure(t *testing.T) {
	d := &recordingDispatcher{failOn: "workspace"}
	cfg := config.NewConfig()
	cfg.CmdQueue = []string{"exec a", "workspace 1 output X", "exec b"}

	ok := Drain(cfg, d)

	assert.False(t, ok)
	assert.True(t, cfg.Failed)
	// Every queued line ran despite the failure in the middle.
	assert.Len(t, d.executed, 3)
	assert.Empty(t, cfg.CmdQueue)
}

// End to end: an initial load defers compositor-ready lines; Ready executes
// them against the real registry.
func TestReadyAfterInitialLoad(t *testing.T) {
	registry := commands.NewRegistry()
	mgr := config.NewManager(registry, nil)

	src := "workspace 1 output HDMI-A-1\nexec swaybg\n"
	require.True(t, mgr.ReadConfig(strings.NewReader(src), false))

	cfg := mgr.Active()
	require.Len(t, cfg.CmdQueue, 2)
	require.Empty(t, cfg.WorkspaceOutputs)

	assert.True(t, Ready(cfg, registry))
	assert.Empty(t, cfg.CmdQueue)
	require.Len(t, cfg.WorkspaceOutputs, 1)
	assert.Equal(t, "HDMI-A-1", cfg.WorkspaceOutputs[0].Output)
}
