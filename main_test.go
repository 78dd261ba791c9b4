// Copyright (c) 2026 The Perch Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleVersion(t *testing.T) {
	assert.True(t, handleVersion([]string{"perch", "--version"}))
	assert.True(t, handleVersion([]string{"perch", "check", "-v"}))
	assert.False(t, handleVersion([]string{"perch", "check"}))
	assert.False(t, handleVersion([]string{"perch"}))
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"perch", "--help"}, handleNakedCommand([]string{"perch"}))
	assert.Equal(t, []string{"perch", "check"}, handleNakedCommand([]string{"perch", "check"}))
}
