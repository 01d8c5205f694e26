// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"pan-validate/internal/formatters"
	"pan-validate/internal/formatters/shared"
	"pan-validate/internal/masking"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Compact single-line JSON for scripts"
}

func (f *Formatter) Format(result masking.Result, options formatters.FormatterOptions) (string, error) {
	data, err := json.Marshal(shared.ConvertResult(result))
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
