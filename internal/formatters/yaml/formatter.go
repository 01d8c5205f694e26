// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"
	"strings"

	"pan-validate/internal/formatters"
	"pan-validate/internal/formatters/shared"
	"pan-validate/internal/masking"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "Flow-style YAML mapping, same fields as json"
}

func (f *Formatter) Format(result masking.Result, options formatters.FormatterOptions) (string, error) {
	var node yaml.Node
	if err := node.Encode(shared.ConvertResult(result)); err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	// Flow style keeps the document on one line
	node.Style = yaml.FlowStyle

	data, err := yaml.Marshal(&node)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
