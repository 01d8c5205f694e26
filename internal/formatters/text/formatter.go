// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"pan-validate/internal/formatters"
	"pan-validate/internal/formatters/shared"
	"pan-validate/internal/masking"

	"github.com/fatih/color"
)

// Formatter implements the human-readable one-line output
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable verdict, green when valid and red when not"
}

func (f *Formatter) Format(result masking.Result, options formatters.FormatterOptions) (string, error) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	if options.NoColor {
		green.DisableColor()
		red.DisableColor()
	}

	if result.Valid {
		return green.Sprint("Valid:") + " " + shared.ValidMessage, nil
	}
	return red.Sprint("Invalid:") + " " + result.Message, nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
