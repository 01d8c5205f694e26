// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StandardObserver records timed operations as structured JSON lines
type StandardObserver struct {
	level     ObservabilityLevel
	writer    io.Writer
	logger    zerolog.Logger
	requestID string
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observer that writes to writer. All records
// from one observer share a request id, one per CLI invocation.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	if writer == nil {
		writer = io.Discard
	}
	return &StandardObserver{
		level:     level,
		writer:    writer,
		logger:    zerolog.New(writer).With().Timestamp().Logger(),
		requestID: "req-" + uuid.NewString(),
	}
}

// Level returns the configured observability level
func (o *StandardObserver) Level() ObservabilityLevel {
	return o.level
}

// RequestID returns the id attached to every record
func (o *StandardObserver) RequestID() string {
	return o.requestID
}

// StartTiming returns a function to complete timing. The caller fills the
// outcome fields of data; component, operation, duration and success are set
// by the returned func.
func (o *StandardObserver) StartTiming(component, operation string) func(success bool, data StandardObservabilityData) {
	start := time.Now()

	return func(success bool, data StandardObservabilityData) {
		data.Component = component
		data.Operation = operation
		data.DurationMs = time.Since(start).Milliseconds()
		data.Success = success
		o.LogOperation(data)
	}
}

// LogOperation logs operation data. Metadata is only included in debug mode.
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o.level == ObservabilityOff {
		return
	}

	if data.RequestID == "" {
		data.RequestID = o.requestID
	}

	event := o.logger.Info()
	if !data.Success {
		event = o.logger.Warn()
	}
	event = event.
		Str("component", data.Component).
		Str("operation", data.Operation).
		Str("request_id", data.RequestID).
		Int64("duration_ms", data.DurationMs).
		Bool("success", data.Success)
	if data.Error != "" {
		event = event.Str("error", data.Error)
	}
	if data.InputLength > 0 {
		event = event.Int("input_length", data.InputLength)
	}
	if o.level == ObservabilityDebug && len(data.Metadata) > 0 {
		event = event.Fields(data.Metadata)
	}
	event.Send()
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component   string
	Operation   string
	RequestID   string
	DurationMs  int64
	Success     bool
	Error       string
	InputLength int
	Metadata    map[string]interface{}
}
