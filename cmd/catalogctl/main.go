// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalogctl is the operator tool for the catalog database.
//
// It only needs DATABASE_URL (plus the optional DATABASE_ACCESS_KEY and
// MIGRATION_PATH), so it runs without Redis or JWT keys.
//
//	catalogctl import data/movies.json
//	catalogctl verify
//	catalogctl admin create --email ops@ycinema.app --password ... --role admin
//	catalogctl migrate up
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/taibuivan/ycinema/internal/platform/config"
	"github.com/taibuivan/ycinema/internal/platform/constants"
	pgstore "github.com/taibuivan/ycinema/internal/platform/postgres"
)

var (
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Operate the YCinema catalog database",
	Long: `Operator commands for the YCinema catalog.

Available subcommands:
  import  - Upsert a catalog document into the movies table
  verify  - Print row counts and a sample title
  admin   - Provision console accounts
  migrate - Apply or roll back schema migrations`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded before the environment is read")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(importCmd, verifyCmd, adminCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger writes text logs to stderr so stdout stays parseable.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "catalogctl"))
}

// loadDSN reads the database section of the configuration.
func loadDSN() (*config.Database, string, error) {
	database, err := config.LoadDatabase(envFile)
	if err != nil {
		return nil, "", err
	}

	dsn, err := database.DSN()
	if err != nil {
		return nil, "", err
	}

	return database, dsn, nil
}

// openPool connects to PostgreSQL. The caller closes the pool.
func openPool(ctx context.Context, logger *slog.Logger) (*pgxpool.Pool, error) {
	_, dsn, err := loadDSN()
	if err != nil {
		return nil, err
	}

	startupCtx, cancel := context.WithTimeout(ctx, constants.StartupTimeout)
	defer cancel()

	pool, err := pgstore.NewPool(startupCtx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("catalogctl: %w", err)
	}
	return pool, nil
}
