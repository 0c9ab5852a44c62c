// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/ycinema/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Upsert a catalog document into the movies table",
	Long: `Reads a JSON document (either a bare array of movies or {"movies": [...]})
and upserts every record in one transaction. Records keep their ids; records
without one get a generated id. Nothing is written if any record is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("catalogctl: read %s: %w", args[0], err)
	}

	pool, err := openPool(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := importer.NewPostgresStore(pool)
	service := importer.NewService(store, store, logger)

	result, err := service.ImportDocument(cmd.Context(), data, importer.OriginCLI)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d movies from %s\n", result.Count, args[0])
	return nil
}
