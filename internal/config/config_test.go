// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pan-validate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.False(t, cfg.Defaults.NoColor)
	assert.False(t, cfg.Defaults.Debug)
	assert.Equal(t, []string{"ci"}, cfg.ListProfiles())
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
defaults:
  format: json
  no_color: true
profiles:
  audit:
    format: yaml
    debug: true
    description: Verbose audit trail
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Defaults.Format)
	assert.True(t, cfg.Defaults.NoColor)
	assert.Equal(t, []string{"audit", "ci"}, cfg.ListProfiles())

	audit := cfg.GetProfile("audit")
	require.NotNil(t, audit)
	assert.Equal(t, "yaml", audit.Format)
	assert.True(t, audit.Debug)
	assert.Equal(t, "Verbose audit trail", audit.Description)
}

func TestLoadConfig_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.NotNil(t, cfg.GetProfile("ci"))
}

func TestLoadConfig_UnsupportedFormat(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "defaults:\n  format: sarif\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported default format 'sarif'")

	_, err = LoadConfig(writeConfig(t, "profiles:\n  x:\n    format: csv\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile 'x'")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, ":::invalid yaml:::"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing config file")
}

func TestGetProfile_Unknown(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Nil(t, cfg.GetProfile("production"))
}

func TestValidateConfig_Nil(t *testing.T) {
	assert.Error(t, ValidateConfig(nil))
}
