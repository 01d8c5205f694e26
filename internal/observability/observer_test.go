// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardObserver_Off(t *testing.T) {
	var buf bytes.Buffer
	obs := NewStandardObserver(ObservabilityOff, &buf)

	obs.StartTiming("masking", "validate")(true, StandardObservabilityData{})

	assert.Zero(t, buf.Len())
}

func TestStandardObserver_RecordsJSON(t *testing.T) {
	var buf bytes.Buffer
	obs := NewStandardObserver(ObservabilityDebug, &buf)

	done := obs.StartTiming("masking", "validate")
	done(false, StandardObservabilityData{
		Error:       "Must show first 6 and last 4 digits",
		InputLength: 8,
		Metadata:    map[string]interface{}{"kind": "TOO_FEW_VISIBLE"},
	})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "masking", record["component"])
	assert.Equal(t, "validate", record["operation"])
	assert.Equal(t, false, record["success"])
	assert.Equal(t, "warn", record["level"])
	assert.Equal(t, "TOO_FEW_VISIBLE", record["kind"])
	assert.Equal(t, "Must show first 6 and last 4 digits", record["error"])
	assert.EqualValues(t, 8, record["input_length"])

	id, ok := record["request_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(strings.TrimPrefix(id, "req-"))
	assert.NoError(t, err)
	assert.Equal(t, obs.RequestID(), id)
}

func TestStandardObserver_MetricsLevelOmitsMetadata(t *testing.T) {
	var buf bytes.Buffer
	obs := NewStandardObserver(ObservabilityMetrics, &buf)

	obs.LogOperation(StandardObservabilityData{
		Component:   "cli",
		Operation:   "run",
		Success:     true,
		InputLength: 16,
		Metadata:    map[string]interface{}{"format": "json"},
	})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "info", record["level"])
	assert.EqualValues(t, 16, record["input_length"])
	assert.NotContains(t, record, "format")
}

func TestNewStandardObserver_NilWriter(t *testing.T) {
	obs := NewStandardObserver(ObservabilityDebug, nil)
	assert.NotPanics(t, func() {
		obs.StartTiming("masking", "validate")(true, StandardObservabilityData{})
	})
}

func TestDebugObserver_Steps(t *testing.T) {
	var buf bytes.Buffer
	obs := NewDebugObserver(&buf, true)

	finish := obs.StartStep("masking", "validate")
	obs.LogDetail("masking", "input length 16")
	obs.LogMetric("masking", "visible_digits", 10)
	finish(true, "valid")

	out := buf.String()
	assert.Contains(t, out, "validate started")
	assert.Contains(t, out, "→ input length 16")
	assert.Contains(t, out, "visible_digits=10")
	assert.Contains(t, out, "validate completed")
	assert.Contains(t, out, "details=valid")
	assert.Equal(t, 0, obs.indent)
}

func TestDebugObserver_FailedStep(t *testing.T) {
	var buf bytes.Buffer
	obs := NewDebugObserver(&buf, true)

	obs.StartStep("config", "load")(false, "missing file")

	assert.Contains(t, buf.String(), "load failed")
}
