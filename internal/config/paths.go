// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/perch-wm/perch/internal/log"
)

// ErrNoConfigFile is returned by FindConfigPath when no candidate location
// holds a readable config file.
var ErrNoConfigFile = errors.New("no config file found in standard locations")

// CandidatePaths returns every location searched for a config file, in
// priority order. Entries whose base directory cannot be derived from the
// environment are omitted.
func CandidatePaths() []string {
	home := os.Getenv("HOME")
	conf := os.Getenv("XDG_CONFIG_HOME")
	if conf == "" && home != "" {
		conf = filepath.Join(home, ".config")
	}

	var paths []string
	add := func(base, suffix string) {
		if base != "" {
			paths = append(paths, filepath.Join(base, suffix))
		}
	}

	add(home, ".sway/config")
	add(conf, "sway/config")
	paths = append(paths, "/etc/sway/config")
	add(home, ".i3/config")
	add(conf, "i3/config")
	paths = append(paths, "/etc/i3/config")

	for dir := range strings.SplitSeq(os.Getenv("XDG_CONFIG_DIRS"), ":") {
		add(dir, "sway/config")
	}

	return paths
}

// FindConfigPath searches the candidate locations and returns the first
// existing, readable config file.
func FindConfigPath() (string, error) {
	for _, path := range CandidatePaths() {
		log.Debugf("Checking for config at %s", path)
		if fileReadable(path) {
			return path, nil
		}
	}
	return "", ErrNoConfigFile
}

// fileReadable reports whether path names a regular file the process can
// open for reading.
func fileReadable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
