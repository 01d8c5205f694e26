// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DebugObserver provides step-by-step, human-readable tracing for --debug
type DebugObserver struct {
	*StandardObserver
	console zerolog.Logger
	indent  int
}

// NewDebugObserver creates a debug observer. Step lines go through a zerolog
// console writer; timing records keep the JSON form of StandardObserver.
func NewDebugObserver(writer io.Writer, noColor bool) *DebugObserver {
	std := NewStandardObserver(ObservabilityDebug, writer)
	console := zerolog.New(zerolog.ConsoleWriter{
		Out:        std.writer,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Str("request_id", std.requestID).Logger()

	return &DebugObserver{
		StandardObserver: std,
		console:          console,
	}
}

// StartStep begins a processing step. The returned func closes it.
func (d *DebugObserver) StartStep(component, step string) func(success bool, details string) {
	start := time.Now()
	d.console.Debug().Str("component", component).Msg(d.prefix() + step + " started")
	d.indent++

	return func(success bool, details string) {
		d.indent--
		event := d.console.Debug()
		status := "completed"
		if !success {
			event = d.console.Warn()
			status = "failed"
		}
		event = event.Str("component", component).Int64("duration_ms", time.Since(start).Milliseconds())
		if details != "" {
			event = event.Str("details", details)
		}
		event.Msg(d.prefix() + step + " " + status)
	}
}

// LogDetail logs a detail within the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	d.console.Debug().Str("component", component).Msg(d.prefix() + "→ " + detail)
}

// LogMetric logs a metric value
func (d *DebugObserver) LogMetric(component, metric string, value interface{}) {
	d.console.Debug().Str("component", component).Interface(metric, value).Msg(d.prefix() + "metric")
}

func (d *DebugObserver) prefix() string {
	return strings.Repeat("  ", d.indent)
}
