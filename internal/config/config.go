// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-folio server.
//
// Struct tags:
//   - envPrefix / env: environment variable names (caarlos0/env);
//   - koanf: keys in the config file.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_" koanf:"app"`

	// Server holds listener addresses, timeouts and the host allow-list.
	Server Server `envPrefix:"SERVER_" koanf:"server"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_" koanf:"storage"`

	// Log holds log level, channel routing and file rotation settings.
	Log Log `envPrefix:"LOG_" koanf:"log"`

	// API describes which request paths form the API surface.
	API API `envPrefix:"API_" koanf:"api"`

	// Tenants holds tenant resolution settings.
	Tenants Tenants `envPrefix:"TENANTS_" koanf:"tenants"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG" koanf:"-"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" koanf:"token_sign_key"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" koanf:"token_issuer"`

	// Version is the semantic version exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION" koanf:"version"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the HTTP listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" koanf:"http_address"`

	// GRPCAddress is the gRPC listen address in "host:port" format.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS" koanf:"grpc_address"`

	// RequestTimeout is the deadline put on each HTTP request's context.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" koanf:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" koanf:"shutdown_timeout"`

	// AllowedHosts lists host suffixes tenants may be served on
	// (e.g. "folio.example,localhost"). Empty allows every host.
	// Env: SERVER_ALLOWED_HOSTS
	AllowedHosts []string `env:"ALLOWED_HOSTS" envSeparator:"," koanf:"allowed_hosts"`

	// MaxBodyBytes caps request bodies read by JSON endpoints.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" koanf:"max_body_bytes"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_" koanf:"db"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme: "postgres://..." or
	// "postgresql://..." opens PostgreSQL through pgx, "file:..." or a
	// path ending in ".db" opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" koanf:"dsn"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level: debug, info, warn, error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" koanf:"level"`

	// Dir enables one rotating file per channel in this directory.
	// Env: LOG_DIR
	Dir string `env:"DIR" koanf:"dir"`

	MaxSizeMB  int `env:"MAX_SIZE_MB" koanf:"max_size_mb"`
	MaxBackups int `env:"MAX_BACKUPS" koanf:"max_backups"`
	MaxAgeDays int `env:"MAX_AGE_DAYS" koanf:"max_age_days"`

	// Channels maps path prefixes to channel names
	// (e.g. "api/tenants:tenants,admin:admin"). Empty selects the defaults.
	// Env: LOG_CHANNELS
	Channels map[string]string `env:"CHANNELS" koanf:"channels"`

	// DefaultChannel receives entries for unmatched paths.
	// Env: LOG_DEFAULT_CHANNEL
	DefaultChannel string `env:"DEFAULT_CHANNEL" koanf:"default_channel"`

	// SkipPaths lists path prefixes the request log ignores.
	// Env: LOG_SKIP_PATHS
	SkipPaths []string `env:"SKIP_PATHS" envSeparator:"," koanf:"skip_paths"`
}

// API describes the API surface for error normalization.
type API struct {
	// Prefixes of API paths. Empty selects the defaults.
	// Env: API_PREFIXES
	Prefixes []string `env:"PREFIXES" envSeparator:"," koanf:"prefixes"`

	// ExcludedPrefixes are never API paths. Empty selects the defaults.
	// Env: API_EXCLUDED_PREFIXES
	ExcludedPrefixes []string `env:"EXCLUDED_PREFIXES" envSeparator:"," koanf:"excluded_prefixes"`
}

// Tenants holds tenant lookup settings.
type Tenants struct {
	// CacheSize is the maximum number of hosts kept in the lookup cache.
	// Env: TENANTS_CACHE_SIZE
	CacheSize int `env:"CACHE_SIZE" koanf:"cache_size"`

	// CacheTTL is how long a host lookup stays cached.
	// Env: TENANTS_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL" koanf:"cache_ttl"`

	// Seed maps hosts to tenant names created at startup when missing
	// (e.g. "acme.localhost:Acme"). Meant for local development.
	// Env: TENANTS_SEED
	Seed map[string]string `env:"SEED" koanf:"seed"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration. args are the command-line arguments without the program
// name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
