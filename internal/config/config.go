// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package config

// DefaultModeName is the name of the mode every Config is born with. The
// default mode is never removed for the lifetime of its Config.
const DefaultModeName = "default"

// Layout enumerates container layouts and orientations.
type Layout int

const (
	LayoutNone Layout = iota
	LayoutHorizontal
	LayoutVertical
	LayoutStacked
	LayoutTabbed
)

var layoutNames = map[Layout]string{
	LayoutNone:       "none",
	LayoutHorizontal: "horizontal",
	LayoutVertical:   "vertical",
	LayoutStacked:    "stacked",
	LayoutTabbed:     "tabbed",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return "none"
}

// MarshalJSON emits the layout name rather than its ordinal so dumps and
// diffs stay readable.
func (l Layout) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// MarshalYAML implements yaml.Marshaler for the same reason.
func (l Layout) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

// Variable is a single name/value binding created by the set command. Name
// includes the leading sigil ($mod, not mod) and is matched as a literal
// prefix during substitution. Owned exclusively by its Config.
type Variable struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Binding associates a key combination with a command string. Keys keep the
// order they were typed in. Owned exclusively by its Mode.
type Binding struct {
	Keys    []string `json:"keys" yaml:"keys"`
	Command string   `json:"command" yaml:"command"`
}

// Mode is a named, switchable set of bindings. Names are unique by
// convention, not enforced. Owned exclusively by its Config.
type Mode struct {
	Name     string     `json:"name" yaml:"name"`
	Bindings []*Binding `json:"bindings" yaml:"bindings"`
}

// WorkspaceOutput maps a workspace name to the output it should appear on.
type WorkspaceOutput struct {
	Workspace string `json:"workspace" yaml:"workspace"`
	Output    string `json:"output" yaml:"output"`
}

// OutputConfig carries per-output settings. The settings themselves are
// opaque to the config core; command handlers append records and the
// compositor interprets them.
type OutputConfig struct {
	Name     string   `json:"name" yaml:"name"`
	Settings []string `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// Config is the unit of configuration lifecycle: it is created empty at the
// start of a load or reload, mutated line by line, and swapped in as the
// process-wide active configuration. At most one Config is active at a time;
// see Manager.
type Config struct {
	Symbols          []*Variable        `json:"symbols" yaml:"symbols"`
	Modes            []*Mode            `json:"modes" yaml:"modes"`
	CmdQueue         []string           `json:"cmd_queue" yaml:"cmd_queue"`
	WorkspaceOutputs []*WorkspaceOutput `json:"workspace_outputs" yaml:"workspace_outputs"`
	OutputConfigs    []*OutputConfig    `json:"output_configs" yaml:"output_configs"`

	// CurrentMode is a non-owning cursor into Modes. It always points at a
	// live Mode of this Config and is reset to the default mode by
	// CloseBlock and when a reload finalizes.
	CurrentMode *Mode `json:"-" yaml:"-"`

	FocusFollowsMouse bool `json:"focus_follows_mouse" yaml:"focus_follows_mouse"`
	MouseWarping      bool `json:"mouse_warping" yaml:"mouse_warping"`
	Reloading         bool `json:"-" yaml:"-"`
	Active            bool `json:"-" yaml:"-"`
	Failed            bool `json:"-" yaml:"-"`
	AutoBackAndForth  bool `json:"workspace_auto_back_and_forth" yaml:"workspace_auto_back_and_forth"`

	GapsInner          int    `json:"gaps_inner" yaml:"gaps_inner"`
	GapsOuter          int    `json:"gaps_outer" yaml:"gaps_outer"`
	FloatingMod        uint32 `json:"floating_mod" yaml:"floating_mod"`
	DefaultLayout      Layout `json:"default_layout" yaml:"default_layout"`
	DefaultOrientation Layout `json:"default_orientation" yaml:"default_orientation"`
}

// NewConfig returns a Config with defaults applied: empty collections, the
// immortal default mode pre-populated and current, focus-follows-mouse and
// mouse-warping on, everything else off or zero.
func NewConfig() *Config {
	def := &Mode{Name: DefaultModeName}
	return &Config{
		Modes:              []*Mode{def},
		CurrentMode:        def,
		FocusFollowsMouse:  true,
		MouseWarping:       true,
		DefaultLayout:      LayoutNone,
		DefaultOrientation: LayoutNone,
	}
}

// DefaultMode returns the mode named "default". It exists for every Config
// produced by NewConfig.
func (c *Config) DefaultMode() *Mode {
	for _, m := range c.Modes {
		if m.Name == DefaultModeName {
			return m
		}
	}
	// Unreachable for a Config built with NewConfig.
	return nil
}

// FindMode returns the first mode with the given name, or nil.
func (c *Config) FindMode(name string) *Mode {
	for _, m := range c.Modes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// EnterMode moves the current-mode cursor to the named mode, creating it
// when it does not exist yet. The new mode is appended to Modes and becomes
// current.
func (c *Config) EnterMode(name string) *Mode {
	m := c.FindMode(name)
	if m == nil {
		m = &Mode{Name: name}
		c.Modes = append(c.Modes, m)
	}
	c.CurrentMode = m
	return m
}

// CloseBlock handles a block-close line. There is no nesting stack: closing
// from any depth returns the cursor directly to the default mode.
func (c *Config) CloseBlock() {
	c.CurrentMode = c.DefaultMode()
}

// FindVariable returns the first variable with the given name, or nil.
func (c *Config) FindVariable(name string) *Variable {
	for _, v := range c.Symbols {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// SetVariable updates an existing variable in place or appends a new one,
// preserving insertion order for substitution.
func (c *Config) SetVariable(name, value string) {
	if v := c.FindVariable(name); v != nil {
		v.Value = value
		return
	}
	c.Symbols = append(c.Symbols, &Variable{Name: name, Value: value})
}

// CurrentModeName reports the name of the mode the cursor points at.
func (c *Config) CurrentModeName() string {
	if c.CurrentMode == nil {
		return ""
	}
	return c.CurrentMode.Name
}

// release severs the ownership tree: the Config exclusively owns its
// Variables, its Modes (each exclusively owning its Bindings), its queued
// command lines and its mapping records. The GC reclaims the memory; what
// matters here is that a released Config holds no live references and the
// cursor no longer points anywhere.
func (c *Config) release() {
	for _, m := range c.Modes {
		m.Bindings = nil
	}
	c.Symbols = nil
	c.Modes = nil
	c.CmdQueue = nil
	c.WorkspaceOutputs = nil
	c.OutputConfigs = nil
	c.CurrentMode = nil
}
