// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pan-validate/internal/config"
	"pan-validate/internal/formatters"
	_ "pan-validate/internal/formatters/json"
	_ "pan-validate/internal/formatters/text"
	_ "pan-validate/internal/formatters/yaml"
	"pan-validate/internal/help"
	"pan-validate/internal/masking"
	"pan-validate/internal/observability"
	"pan-validate/internal/security"
	"pan-validate/internal/version"

	"golang.org/x/term"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitConfig  = 2
)

// configFlags holds command line flag values
type configFlags struct {
	outputFormat string
	configFile   string
	profileName  string
	listProfiles bool
	noColor      bool
	debug        bool
	showRules    bool
	showHelp     bool
	showVersion  bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format  string
	noColor bool
	debug   bool
}

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code
func run(program string, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	flags := &configFlags{}
	fs.StringVar(&flags.outputFormat, "format", "", "Output format: text, json, yaml (default: text)")
	fs.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	fs.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	fs.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles")
	fs.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&flags.debug, "debug", false, "Trace validation steps to stderr")
	fs.BoolVar(&flags.showRules, "rules", false, "Explain the masking rules")
	fs.BoolVar(&flags.showHelp, "help", false, "Show help information")
	fs.BoolVar(&flags.showVersion, "version", false, "Show version information")

	// Auto-detect non-interactive output
	interactive := isTerminal(stdout)

	flagArgs, positional := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		helpSystem := help.NewSystem(program, !interactive)
		if errors.Is(err, flag.ErrHelp) {
			helpSystem.ShowGeneralHelp(stdout)
			return exitValid
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		helpSystem.PrintUsage(stderr)
		return exitConfig
	}

	if flags.showVersion {
		fmt.Fprintln(stdout, version.Info())
		return exitValid
	}

	cfg, _ := config.LoadConfig("")
	if flags.configFile != "" {
		loaded, err := config.LoadConfig(flags.configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitConfig
		}
		cfg = loaded
	}

	if flags.listProfiles {
		for _, name := range cfg.ListProfiles() {
			fmt.Fprintf(stdout, "%s\t%s\n", name, cfg.Profiles[name].Description)
		}
		return exitValid
	}

	var activeProfile *config.Profile
	if flags.profileName != "" {
		activeProfile = cfg.GetProfile(flags.profileName)
		if activeProfile == nil {
			fmt.Fprintf(stderr, "Error: profile '%s' not found\n", flags.profileName)
			return exitConfig
		}
	}

	final := resolveConfiguration(cfg, activeProfile, flags, func(name string) bool { return isFlagSet(fs, name) })
	if !interactive {
		final.noColor = true
	}

	helpSystem := help.NewSystem(program, final.noColor)
	if flags.showHelp {
		helpSystem.ShowGeneralHelp(stdout)
		return exitValid
	}
	if flags.showRules {
		helpSystem.ShowRules(stdout)
		return exitValid
	}

	if _, ok := formatters.Get(final.format); !ok {
		fmt.Fprintf(stderr, "Error: unsupported format '%s'. Available formats: %s\n",
			final.format, strings.Join(formatters.List(), ", "))
		return exitConfig
	}

	positional = append(fs.Args(), positional...)
	switch len(positional) {
	case 0:
		helpSystem.PrintUsage(stdout)
		return exitInvalid
	case 1:
	default:
		fmt.Fprintf(stderr, "Error: expected exactly one PAN argument, got %d\n", len(positional))
		helpSystem.PrintUsage(stderr)
		return exitInvalid
	}

	pan := security.NewSecureString(positional[0])
	defer pan.Clear()

	result := validate(pan, final, stderr)

	out, err := formatters.Export(final.format, result, formatters.FormatterOptions{NoColor: final.noColor})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}
	fmt.Fprintln(stdout, out)

	if result.Valid {
		return exitValid
	}
	return exitInvalid
}

// validate runs the masking check, tracing it when debug is enabled
func validate(pan *security.SecureString, final *finalConfiguration, stderr io.Writer) masking.Result {
	if !final.debug {
		return masking.Check(pan.String())
	}

	obs := observability.NewDebugObserver(stderr, final.noColor)
	obs.LogDetail("cli", fmt.Sprintf("output format: %s", final.format))

	finish := obs.StartStep("masking", "validate")
	obs.LogDetail("masking", fmt.Sprintf("input length: %d", pan.Len()))
	done := obs.StartTiming("masking", "validate")

	result := masking.Check(pan.String())
	obs.LogMetric("masking", "visible_digits", masking.VisibleDigits(pan.String()))

	details := "valid"
	if !result.Valid {
		details = result.Kind.String()
	}
	done(result.Valid, observability.StandardObservabilityData{
		Error:       result.Message,
		InputLength: pan.Len(),
		Metadata:    map[string]interface{}{"kind": result.Kind.String()},
	})
	finish(result.Valid, details)
	return result
}

// splitArgs separates leading flags from the PAN. Parsing stops at "--", at
// the first non-flag argument, or at an argument that is a PAN in its own
// right, since a PAN may legitimately start with a hyphen separator.
func splitArgs(fs *flag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		if !strings.HasPrefix(arg, "-") || looksLikePAN(arg) {
			return args[:i], args[i:]
		}

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		// A value flag given as "--name value" consumes the next argument
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++
		}
	}
	return args, nil
}

// looksLikePAN reports whether arg is made only of PAN characters, so it is
// validated rather than parsed as a flag. "--" stays the flag terminator.
func looksLikePAN(arg string) bool {
	if arg == "--" {
		return false
	}
	for i := 0; i < len(arg); i++ {
		switch c := arg[i]; {
		case c >= '0' && c <= '9', c == masking.MaskChar, c == ' ', c == '-':
		default:
			return false
		}
	}
	return true
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// resolveConfiguration resolves final values from config defaults, the
// active profile, and explicitly set flags, in that order of precedence
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags, isSet func(string) bool) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// No color
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isSet("no-color") {
		final.noColor = flags.noColor
	}

	// Debug
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isSet("debug") {
		final.debug = flags.debug
	}

	return final
}

// isFlagSet reports whether the named flag was given on the command line
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
