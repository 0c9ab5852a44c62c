// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

Values come from the process environment, optionally pre-seeded from a local
.env file. 'joho/godotenv' loads the file without overriding variables that are
already set, then 'caarlos0/env' maps the environment into typed structs.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

The API server needs the full [Config]. The catalogctl tool only needs the
[Database] section, so it calls [LoadDatabase] and does not require Redis or
JWT keys to be configured.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no explicit env files are passed.
const DefaultEnvFile = ".env"

// # Configuration Schema

// Database holds the relational store endpoint and access key.
type Database struct {
	// URL is the postgres:// endpoint of the hosted catalog store.
	URL string `env:"DATABASE_URL,required"`

	// AccessKey, when set, replaces the password embedded in URL.
	AccessKey string `env:"DATABASE_ACCESS_KEY"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
}

// Config holds all runtime configuration for the catalog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	Database Database

	// Session store
	RedisURL string `env:"REDIS_URL,required"`

	// RS256 key pair for access tokens
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// FallbackCatalogPath points to the static catalog document served when
	// the remote store is empty or unreachable.
	FallbackCatalogPath string `env:"FALLBACK_CATALOG_PATH" envDefault:"./data/movies.json"`

	// AllowedOriginSuffix is the production CORS origin suffix.
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"ycinema.app"`
}

// # Configuration Loading

// Load reads the optional env files and parses the full server [Config].
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// LoadDatabase reads the optional env files and parses only the [Database] section.
func LoadDatabase(envFiles ...string) (*Database, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	database := &Database{}
	if err := env.Parse(database); err != nil {
		return nil, fmt.Errorf("config: failed to parse database settings: %w", err)
	}

	return database, nil
}

// loadEnvFiles applies each existing file to the process environment.
// Missing files are skipped, variables already present in the environment win.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("config: failed to load %s: %w", file, err)
		}
	}

	return nil
}

// DSN returns the connection string with the access key applied.
func (d Database) DSN() (string, error) {
	if d.AccessKey == "" {
		return d.URL, nil
	}

	parsed, err := url.Parse(d.URL)
	if err != nil || parsed.Scheme == "" {
		return "", fmt.Errorf("config: DATABASE_ACCESS_KEY requires a URL-form DATABASE_URL")
	}

	username := ""
	if parsed.User != nil {
		username = parsed.User.Username()
	}
	parsed.User = url.UserPassword(username, d.AccessKey)

	return parsed.String(), nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OriginSuffix returns the production CORS origin suffix.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
