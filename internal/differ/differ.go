// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

// Package differ compares two parsed configurations and renders their
// semantic differences, which is how an operator previews what a live
// reload would change.
package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/perch-wm/perch/internal/log"
)

// Diff compares the JSON forms of two configs and writes an ascii diff to w.
// Returns true when the configs differ.
func Diff(before, after []byte, color bool, w io.Writer) (bool, error) {
	log.Debugf(">> differ()")

	if len(before) == 0 || len(after) == 0 {
		return false, nil
	}

	delta, err := gojsondiff.New().Compare(before, after)
	if err != nil {
		return false, fmt.Errorf("failed to compare configs: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The configurations are identical.")
		return false, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(before, &jdoc); err != nil {
		return true, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	asciiFmt := formatter.NewAsciiFormatter(jdoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       color,
	})
	diffString, err := asciiFmt.Format(delta)
	if err != nil {
		return true, err
	}

	fmt.Fprintln(w, diffString)
	return true, nil
}
