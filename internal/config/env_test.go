// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environment := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ADMIN_ID":   "A1",
		"APP_EXPORT_DIR": "/tmp/exports",
		"APP_LOG_FILE":   "/var/log/portal.log",

		"ADAPTER_ADDRESS":         "http://portal.local:3000",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DSN": "cache.db",

		"WORKERS_REFRESH_INTERVAL": "2m",

		"FAKEAPI_ADDRESS":   "localhost:4000",
		"FAKEAPI_SEED_FILE": "seed.xlsx",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, environment)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "A1", cfg.App.AdminID)
	assert.Equal(t, "/tmp/exports", cfg.App.ExportDir)
	assert.Equal(t, "/var/log/portal.log", cfg.App.LogFile)
	assert.Equal(t, "http://portal.local:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "localhost:4000", cfg.FakeAPI.Address)
	assert.Equal(t, "seed.xlsx", cfg.FakeAPI.SeedFile)
}

func TestParseEnv_PartialFields(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, map[string]string{"APP_ADMIN_ID": "A1"})

	require.NoError(t, err)
	assert.Equal(t, "A1", cfg.App.AdminID)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("APP_ADMIN_ID", "from-process")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "from-process", cfg.App.AdminID)
}
