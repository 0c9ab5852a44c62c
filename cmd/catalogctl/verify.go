// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/ycinema/internal/importer"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Print row counts and a sample title",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	pool, err := openPool(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := importer.NewPostgresStore(pool)
	report, err := importer.NewService(store, store, logger).Verify(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "movies:          %d\n", report.Movies)
	fmt.Fprintf(out, "homepage_config: %d\n", report.HomepageRows)
	if report.SampleTitle != "" {
		fmt.Fprintf(out, "sample:          %s\n", report.SampleTitle)
	}
	return nil
}
