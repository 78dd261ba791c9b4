// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

// Package query drills into the JSON form of a parsed configuration with a
// small dot-path language: modes[1].bindings[0].command, symbols[*].name,
// gaps_inner. A bare key against an array of one element unwraps it.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(?:\[(\d+|\*)?\])?$`)

// Drill resolves path against jsonData. An unresolvable or malformed path
// yields a zero Result (Exists() == false).
func Drill(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for _, p := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if matches == nil {
			return gjson.Result{}
		}

		key, index := matches[1], matches[2]
		val := current.Get(key)

		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == "" && len(arr) == 1:
				// Single-element arrays unwrap so that paths like
				// output_configs.name work without an index.
				val = arr[0]
			case index == "" || index == "*":
				// Keep the whole list.
			default:
				i, err := strconv.Atoi(index)
				if err != nil || i < 0 || i >= len(arr) {
					return gjson.Result{}
				}
				val = arr[i]
			}
		} else if index != "" {
			return gjson.Result{}
		}

		current = val
	}

	return current
}
