// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"bytes"
	"strings"
	"testing"

	"pan-validate/internal/formatters"
	_ "pan-validate/internal/formatters/json"
	_ "pan-validate/internal/formatters/text"
	_ "pan-validate/internal/formatters/yaml"
	"pan-validate/internal/masking"

	"github.com/stretchr/testify/assert"
)

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	NewSystem("pan-validate", true).PrintUsage(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "Usage: pan-validate <pan>", lines[0])
	assert.Equal(t, "Example: pan-validate '123456******1234'", lines[2])
}

func TestShowGeneralHelp_ListsFlags(t *testing.T) {
	var buf bytes.Buffer
	NewSystem("pan-validate", true).ShowGeneralHelp(&buf)

	out := buf.String()
	for _, flag := range []string{"--format", "--config", "--profile", "--no-color", "--debug", "--rules", "--version"} {
		assert.Contains(t, out, flag)
	}
	assert.Contains(t, out, "EXIT CODES:")
}

func TestShowGeneralHelp_ListsFormats(t *testing.T) {
	var buf bytes.Buffer
	NewSystem("pan-validate", true).ShowGeneralHelp(&buf)

	out := buf.String()
	assert.Contains(t, out, "FORMATS:")
	for _, name := range []string{"json", "text", "yaml"} {
		formatter, ok := formatters.Get(name)
		if assert.True(t, ok, name) {
			assert.Contains(t, out, formatter.Description())
		}
	}
}

func TestShowRules_ListsEveryKind(t *testing.T) {
	var buf bytes.Buffer
	NewSystem("pan-validate", true).ShowRules(&buf)

	out := buf.String()
	assert.Contains(t, out, "exactly 10 digits: the first 6 and the last 4")
	for _, kind := range masking.Kinds() {
		assert.Contains(t, out, kind.String())
		assert.Contains(t, out, kind.Message())
	}
}
