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
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_PATH": "/tmp/client.log",

		"ADAPTER_SERVICE_URL":        "http://localhost:8080/FeatureServer",
		"ADAPTER_TOKEN":              "secret",
		"ADAPTER_REQUEST_TIMEOUT":    "20s",
		"ADAPTER_IDENTIFY_TOLERANCE": "7.5",

		"STORAGE_DB_DSN": "./edits.db",

		"SERVER_ADDRESS":         "localhost:9000",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"WORKERS_SUBMIT_INTERVAL": "5m",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg, err := parseEnv()

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogPath)
	assert.Equal(t, "http://localhost:8080/FeatureServer", cfg.Adapter.ServiceURL)
	assert.Equal(t, "secret", cfg.Adapter.Token)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 7.5, cfg.Adapter.IdentifyTolerance, 1e-9)
	assert.Equal(t, "./edits.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SubmitInterval)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg, err := parseEnv()

	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.ServiceURL)
	assert.Zero(t, cfg.Workers.SubmitInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg, err := parseEnv()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error getting env configs")
}
