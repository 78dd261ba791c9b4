// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bufio"
	"io"
	"strings"
)

// preprocessor yields cleaned lines from a config stream: comments stripped,
// leading and trailing whitespace trimmed. A # starts a comment unless it
// sits inside double quotes.
type preprocessor struct {
	scanner *bufio.Scanner
	line    string
}

func newPreprocessor(r io.Reader) *preprocessor {
	return &preprocessor{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next line, returning false at end of stream.
func (p *preprocessor) Scan() bool {
	if !p.scanner.Scan() {
		return false
	}
	p.line = clean(p.scanner.Text())
	return true
}

// Line returns the cleaned text of the current line. Blank lines come
// through as empty strings; the parse loop skips them.
func (p *preprocessor) Line() string {
	return p.line
}

// Err returns the first error encountered while reading the stream.
func (p *preprocessor) Err() error {
	return p.scanner.Err()
}

func clean(line string) string {
	return strings.TrimSpace(stripComment(line))
}

func stripComment(line string) string {
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case '#':
			if !inQuotes {
				return line[:i]
			}
		}
	}
	return line
}
