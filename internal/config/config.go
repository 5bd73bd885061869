// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the student
// portal client. It is populated by merging environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the administrator context and local output settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the Users API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local snapshot cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// FakeAPI holds settings of the local Users API used for demos.
	FakeAPI FakeAPI `envPrefix:"FAKEAPI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AdminID scopes every list and mutation call to one administrator.
	// Env: APP_ADMIN_ID
	AdminID string `env:"ADMIN_ID"`

	// ExportDir is the directory spreadsheet exports are written to.
	// Env: APP_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`

	// LogFile is the client log file path (relative to the executable when
	// not absolute).
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the outbound Users API transport.
type Adapter struct {
	// HTTPAddress is the base address of the portal API
	// (e.g. "http://localhost:3000" or "localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is applied to every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	// DB holds the SQLite snapshot cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings of the snapshot cache.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "portal-cache.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the directory is re-fetched in the
	// background (e.g. "5m").
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// FakeAPI holds settings of cmd/fakeapi.
type FakeAPI struct {
	// Address is the listen address in host:port form.
	// Env: FAKEAPI_ADDRESS
	Address string `env:"ADDRESS"`

	// SeedFile is an optional .xlsx workbook (as written by the client
	// export) whose Users sheet seeds the in-memory directory.
	// Env: FAKEAPI_SEED_FILE
	SeedFile string `env:"SEED_FILE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (earlier sources win for
// non-zero fields; later sources only fill what is still empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied last.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
