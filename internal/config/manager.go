// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/perch-wm/perch/internal/log"
)

// Class is a command handler's declared execution class. It decides how the
// parse loop routes a line.
type Class int

const (
	// ClassImmediate commands execute as soon as they are parsed.
	ClassImmediate Class = iota
	// ClassDeferred commands need the compositor to be live. While the
	// Config is not yet active they are queued verbatim on CmdQueue; during
	// a reload of a running instance they execute immediately.
	ClassDeferred
	// ClassRuntimeOnly commands are only legal from a key binding. In a
	// config file they are logged and skipped.
	ClassRuntimeOnly
)

// Dispatcher resolves and executes command lines. The command subsystem
// implements it; the parse loop only ever sees this interface.
type Dispatcher interface {
	// Resolve maps a leading token to its handler class. The second return
	// is false for an unknown command.
	Resolve(name string) (Class, bool)
	// Execute runs a full command line against cfg.
	Execute(cfg *Config, line string) error
}

// ArrangeFunc is invoked with the newly active Config after a live reload
// finalizes, so the compositor can re-apply layout.
type ArrangeFunc func(cfg *Config)

// Manager owns the process-wide active Config and runs the load/reload
// protocol against it.
//
// The swap is deliberately non-atomic: a fresh Config is installed as the
// active one before its parse pass starts, and a failed pass does not roll
// back. The partially built Config stays active with Failed set, trading
// consistency for always having some active configuration. The prior Config
// is released after the pass completes, success or not.
//
// Reloads are serialized: a second reload starting before the first finished
// would release collections the first is still filling.
type Manager struct {
	mu       sync.Mutex
	active   *Config
	dispatch Dispatcher
	arrange  ArrangeFunc
}

// NewManager returns a Manager wired to the given dispatcher. arrange may be
// nil when no compositor is attached (validation tooling, tests).
func NewManager(dispatch Dispatcher, arrange ArrangeFunc) *Manager {
	return &Manager{dispatch: dispatch, arrange: arrange}
}

// Active returns the currently installed Config, nil before the first load.
func (m *Manager) Active() *Config {
	return m.active
}

// install swaps next in as the active Config and returns the previous one.
// Callers own finishing the parse pass and releasing the previous Config.
func (m *Manager) install(next *Config) *Config {
	prev := m.active
	m.active = next
	return prev
}

// Load locates, opens and parses a config file. When path is empty the
// standard candidate locations are searched. A missing or unreadable file is
// fatal: Load returns false without touching the active Config. Whether this
// is a live reload is decided by whether a Config is already installed.
func (m *Manager) Load(path string) bool {
	log.Infof("Loading config")

	if path == "" {
		found, err := FindConfigPath()
		if err != nil {
			log.Errorf("Unable to find a config file!")
			return false
		}
		path = found
	}

	f, err := os.Open(path)
	if err != nil {
		log.Errorf("Unable to open %s for reading", path)
		return false
	}
	defer f.Close()

	return m.ReadConfig(f, m.active != nil)
}

// ReadConfig runs the reload protocol over a line stream:
//
//  1. allocate a fresh Config with defaults, remembering the prior active
//     Config (nil on first load)
//  2. install the fresh Config as active before any line is parsed; on a
//     live reload mark it Reloading and Active first
//  3. parse every line: substitute variables, classify the leading token,
//     then execute, defer or reject. Handler failures flip the overall
//     result and set Failed but never abort the pass.
//  4. finalize: clear Reloading, re-arrange on live reload, reset the mode
//     cursor, release the prior Config unconditionally
//
// The returned bool is the conjunction of all dispatch outcomes.
func (m *Manager) ReadConfig(r io.Reader, isActive bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := NewConfig()
	defaultMode := cfg.CurrentMode
	old := m.install(cfg)

	if isActive {
		log.Debugf("Performing configuration file reload")
		cfg.Reloading = true
		cfg.Active = true
	}
	success := true

	pre := newPreprocessor(r)
	for pre.Scan() {
		line := pre.Line()
		if line == "" {
			continue
		}
		if line[0] == '}' {
			cfg.CurrentMode = defaultMode
			continue
		}

		line = cfg.Substitute(line)
		name := firstToken(line)

		class, known := m.dispatch.Resolve(name)
		if !known {
			log.Errorf("Invalid command %q", line)
			continue
		}

		switch {
		case class == ClassRuntimeOnly:
			log.Errorf("Invalid command during config %q", line)
		case class == ClassDeferred && !cfg.Active:
			// Commands that need a live compositor are queued for
			// execution once it is up.
			log.Debugf("Deferring command %q", line)
			cfg.CmdQueue = append(cfg.CmdQueue, line)
		default:
			if err := m.dispatch.Execute(cfg, line); err != nil {
				log.Debugf("Config load failed for line %q: %v", line, err)
				success = false
				cfg.Failed = true
			}
		}
	}
	if err := pre.Err(); err != nil {
		log.Errorf("Error reading config stream: %v", err)
		success = false
		cfg.Failed = true
	}

	if isActive {
		cfg.Reloading = false
		if m.arrange != nil {
			m.arrange(cfg)
		}
	}
	cfg.CurrentMode = defaultMode

	if old != nil {
		old.release()
	}

	return success
}

func firstToken(line string) string {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i]
	}
	return line
}
