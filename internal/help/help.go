// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"text/tabwriter"

	"pan-validate/internal/formatters"
	"pan-validate/internal/masking"

	"github.com/fatih/color"
)

// ExamplePAN is a correctly masked 16-digit PAN used in usage text
const ExamplePAN = "123456******1234"

// System renders usage, flag help and the masking rule set
type System struct {
	program string
	colors  map[string]*color.Color
}

// NewSystem creates a new help system for the named program
func NewSystem(program string, noColor bool) *System {
	colors := map[string]*color.Color{
		"title":   color.New(color.FgWhite, color.Bold),
		"header":  color.New(color.FgBlue, color.Bold),
		"item":    color.New(color.FgCyan),
		"example": color.New(color.FgMagenta),
	}
	if noColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}

	return &System{
		program: program,
		colors:  colors,
	}
}

// PrintUsage writes the short usage shown when no PAN is given
func (h *System) PrintUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <pan>\n", h.program)
	fmt.Fprintln(w, "Validate PAN masking according to PCI DSS 3.3")
	fmt.Fprintf(w, "Example: %s '%s'\n", h.program, ExamplePAN)
}

// ShowGeneralHelp writes the full help text
func (h *System) ShowGeneralHelp(w io.Writer) {
	h.colors["title"].Fprintln(w, "pan-validate - PAN masking compliance check")
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w)
	h.colors["header"].Fprintln(w, "USAGE:")
	fmt.Fprintf(w, "  %s [options] <pan>\n", h.program)
	fmt.Fprintln(w)

	h.colors["header"].Fprintln(w, "OPTIONS:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  --format\t<format>\tOutput format: text, json, yaml (default: text)")
	fmt.Fprintln(tw, "  --config\t<path>\tPath to configuration file (YAML); no file is read otherwise")
	fmt.Fprintln(tw, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(tw, "  --list-profiles\t\tList available profiles and exit")
	fmt.Fprintln(tw, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(tw, "  --debug\t\tTrace validation steps to stderr (the PAN itself is never logged)")
	fmt.Fprintln(tw, "  --rules\t\tExplain the masking rules and failure kinds")
	fmt.Fprintln(tw, "  --version\t\tShow version information")
	fmt.Fprintln(tw, "  --help\t\tShow this help message")
	tw.Flush()
	fmt.Fprintln(w)

	h.colors["header"].Fprintln(w, "FORMATS:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range formatters.List() {
		if formatter, ok := formatters.Get(name); ok {
			fmt.Fprintf(tw, "  %s\t%s\n", h.colors["item"].Sprint(name), formatter.Description())
		}
	}
	tw.Flush()
	fmt.Fprintln(w)

	h.colors["header"].Fprintln(w, "EXAMPLES:")
	h.colors["example"].Fprintf(w, "  %s '%s'\n", h.program, ExamplePAN)
	h.colors["example"].Fprintf(w, "  %s '1234-56**-****-1234'\n", h.program)
	h.colors["example"].Fprintf(w, "  %s --format json '123456*******1234'\n", h.program)
	fmt.Fprintln(w)

	h.colors["header"].Fprintln(w, "EXIT CODES:")
	fmt.Fprintln(w, "  0  PAN is properly masked")
	fmt.Fprintln(w, "  1  PAN is not properly masked, or no PAN was given")
	fmt.Fprintln(w, "  2  invalid options or configuration")
}

// ShowRules writes the masking rule set and every failure kind in check order
func (h *System) ShowRules(w io.Writer) {
	h.colors["title"].Fprintln(w, "Masking rules")
	fmt.Fprintln(w, "=============")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "A masked PAN shows exactly %d digits: the first %d and the last %d.\n",
		masking.MaxVisibleDigits, masking.VisiblePrefix, masking.VisibleSuffix)
	fmt.Fprintf(w, "Every digit in between is replaced by '%c'. Spaces and hyphens are\n", masking.MaskChar)
	fmt.Fprintln(w, "ignored wherever they appear; any other character is rejected.")
	fmt.Fprintln(w)

	h.colors["header"].Fprintln(w, "CHECKS (first failure wins):")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, kind := range masking.Kinds() {
		fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, h.colors["item"].Sprint(kind.String()), kind.Message())
	}
	tw.Flush()
}
