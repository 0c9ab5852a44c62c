// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/ycinema/internal/platform/migration"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:       "migrate up|down",
	Short:     "Apply or roll back schema migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE:      runMigrate,
}

func init() {
	migrateCmd.Flags().IntVar(&migrateSteps, "steps", 1, "number of migrations to roll back (down only)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	database, dsn, err := loadDSN()
	if err != nil {
		return err
	}

	if args[0] == "down" {
		return migration.RunDown(dsn, database.MigrationPath, migrateSteps, logger)
	}
	return migration.RunUp(dsn, database.MigrationPath, logger)
}
