// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the outbound feature service connection.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local edit store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the development feature server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogPath is the file the client writes its log to. Empty means a "logs"
	// file next to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Adapter holds settings of the outbound feature service connection.
type Adapter struct {
	// ServiceURL is the root URL of the feature service
	// (e.g. "http://localhost:8080/arcgis/rest/services/Parks/FeatureServer").
	// Env: ADAPTER_SERVICE_URL
	ServiceURL string `env:"SERVICE_URL"`

	// Token is the bearer token attached to every request. Optional.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// IdentifyTolerance is the hit-test radius, in screen units, used by
	// identify.
	// Env: ADAPTER_IDENTIFY_TOLERANCE
	IdentifyTolerance float64 `env:"IDENTIFY_TOLERANCE"`
}

// Storage groups local storage settings.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite edit store.
type DB struct {
	// DSN is the SQLite file path (e.g. "./edits.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings of the development feature
// server.
type Server struct {
	// HTTPAddress is the address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SubmitInterval is how often dirty tables are submitted automatically.
	// Zero disables automatic submission.
	// Env: WORKERS_SUBMIT_INTERVAL
	SubmitInterval time.Duration `env:"SUBMIT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
