// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// Package config provides layered configuration for the portfolio backend
// using Koanf v2. Sources are merged lowest-to-highest priority:
//
//  1. Built-in defaults
//  2. Config file (config.yaml, optional)
//  3. Environment variables
//
// The database path has no default and must be supplied externally; Load
// fails fast when it is absent.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the portfolio backend.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Blog     BlogConfig     `koanf:"blog"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0.
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8001.
	Port int `koanf:"port"`

	// Timeout bounds request read/write and graceful shutdown. Default: 30s.
	Timeout time.Duration `koanf:"timeout"`

	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the DuckDB database file (":memory:" for tests).
	// Required; there is no default.
	Path string `koanf:"path"`

	// Name is the logical database name reported in health output.
	Name string `koanf:"name"`

	// MaxMemory caps DuckDB memory usage. Default: 512MB.
	MaxMemory string `koanf:"max_memory"`

	// Threads sets DuckDB worker threads. 0 = runtime.NumCPU().
	Threads int `koanf:"threads"`
}

// APIConfig holds request paging limits.
type APIConfig struct {
	// DefaultPageSize is applied when a list request omits limit.
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize caps any requested limit.
	MaxPageSize int `koanf:"max_page_size"`
}

// SecurityConfig holds the CORS allowlist.
// The portfolio API is deliberately unauthenticated; CORS is the only
// security-adjacent surface it configures.
type SecurityConfig struct {
	// CORSOrigins lists allowed origins. Default: ["*"].
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// BlogConfig holds blog view-counter settings.
type BlogConfig struct {
	// CounterPath is the Badger directory for view counters.
	// Empty means in-memory (counters reset on restart, matching the
	// non-authoritative mock catalog).
	CounterPath string `koanf:"counter_path"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// defaultConfig returns a Config with all defaults applied.
// Database.Path is intentionally left empty: it must come from the
// environment or config file.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8001,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:      "",
			Name:      "portfolio",
			MaxMemory: "512MB",
			Threads:   0,
		},
		API: APIConfig{
			DefaultPageSize: 50,
			MaxPageSize:     500,
		},
		Security: SecurityConfig{
			CORSOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Blog: BlogConfig{
			CounterPath: "",
		},
	}
}

// Validate checks the configuration for fatal problems.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required: set DATABASE_PATH or database.path in config.yaml")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d: must be 1-65535", c.Server.Port)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api default_page_size must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api max_page_size %d is below default_page_size %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	return nil
}
