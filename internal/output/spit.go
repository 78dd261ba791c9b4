// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/perch-wm/perch/internal/config"
	"github.com/perch-wm/perch/internal/log"
)

// Spit emits cfg to w in the requested format: json, yaml or text. Text mode
// renders one table per populated section. If w is nil, os.Stdout is used.
func Spit(cfg *config.Config, format string, color bool, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "json":
		doc, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, _ = w.Write(append(doc, '\n'))
		return nil
	case "yaml":
		doc, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, _ = w.Write(doc)
		return nil
	case "text":
		return spitText(cfg, color, w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// MarshalJSON is a convenience used by diff and query: the canonical JSON
// form of a parsed config.
func MarshalJSON(cfg *config.Config) ([]byte, error) {
	return json.Marshal(cfg)
}

func spitText(cfg *config.Config, color bool, w io.Writer) error {
	doc, err := MarshalJSON(cfg)
	if err != nil {
		return err
	}
	parsed := gjson.ParseBytes(doc)

	var rows [][]string
	addRow := func(cells ...string) {
		rows = append(rows, cells)
	}

	for _, v := range parsed.Get("symbols").Array() {
		addRow("variable", v.Get("name").String(), v.Get("value").String())
	}
	for _, m := range parsed.Get("modes").Array() {
		name := m.Get("name").String()
		for _, b := range m.Get("bindings").Array() {
			var keys []string
			for _, k := range b.Get("keys").Array() {
				keys = append(keys, k.String())
			}
			addRow("binding ["+name+"]", strings.Join(keys, "+"), b.Get("command").String())
		}
	}
	for _, wo := range parsed.Get("workspace_outputs").Array() {
		addRow("workspace", wo.Get("workspace").String(), wo.Get("output").String())
	}
	for _, oc := range parsed.Get("output_configs").Array() {
		var settings []string
		for _, s := range oc.Get("settings").Array() {
			settings = append(settings, s.String())
		}
		addRow("output", oc.Get("name").String(), strings.Join(settings, " "))
	}
	for _, key := range []string{
		"focus_follows_mouse", "mouse_warping", "workspace_auto_back_and_forth",
		"gaps_inner", "gaps_outer", "floating_mod",
		"default_layout", "default_orientation",
	} {
		addRow("setting", key, parsed.Get(key).String())
	}

	tableWriter(rows, color, w)
	return nil
}

// tableWriter renders rows honoring the color option, in the borderless
// style the rest of the tooling uses.
func tableWriter(rows [][]string, color bool, w io.Writer) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// Color is only honored on an actual terminal.
	if color && term.IsTerminal(int(os.Stdout.Fd())) {
		headerColor, evenColor, oddColor := getColors()
		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(2)
			}

			return style
		}).
		Headers("SECTION", "KEY", "VALUE").
		BorderHeader(false).
		Rows(rows...)

	if _, err := fmt.Fprintln(w, t); err != nil {
		log.Errorf("table write: %v", err)
	}
}

// getColors picks table colors based on terminal background so output stays
// visible for both light and dark themes.
func getColors() (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	pick := func(light, dark string) color.Color {
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = pick("#b08800", "#f6be00")
	even = pick("#333333", "#ffffff")
	odd = pick("#0088a0", "#00c8f0")

	return
}
