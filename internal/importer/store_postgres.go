// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ycinema/internal/platform/database/schema"
	"github.com/taibuivan/ycinema/internal/platform/dberr"
	"github.com/taibuivan/ycinema/internal/platform/postgres"
)

// PostgresStore implements [Writer] and [Inspector] using pgx.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed import store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// UpsertStatement builds the upsert for one entry's columns.
func UpsertStatement(columns []string) string {
	marks := make([]string, len(columns))
	var assignments []string

	for i, column := range columns {
		marks[i] = fmt.Sprintf("$%d", i+1)
		if column != movies.ID {
			assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
		}
	}

	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s;`,
		movies.Table,
		strings.Join(columns, ", "),
		strings.Join(marks, ", "),
		movies.ID,
		strings.Join(assignments, ", "),
	)
}

// UpsertEntries implements [Writer].
func (store *PostgresStore) UpsertEntries(context context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	return postgres.WithTx(context, store.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, entry := range entries {
			batch.Queue(UpsertStatement(entry.Columns), entry.Values...)
		}

		results := tx.SendBatch(context, batch)
		for _, entry := range entries {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return dberr.Wrap(err, "import_item "+entry.ID)
			}
		}
		return dberr.Wrap(results.Close(), "import_batch")
	})
}

// Inspect implements [Inspector].
func (store *PostgresStore) Inspect(context context.Context) (*Report, error) {
	report := &Report{}

	countMovies := fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, movies.Table)
	if err := store.db.QueryRow(context, countMovies).Scan(&report.Movies); err != nil {
		return nil, dberr.Wrap(err, "count_movies")
	}

	countConfig := fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, schema.HomepageConfig.Table)
	if err := store.db.QueryRow(context, countConfig).Scan(&report.HomepageRows); err != nil {
		return nil, dberr.Wrap(err, "count_homepage_config")
	}

	sample := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT 1;`, movies.Title, movies.Table, movies.CreatedAt)
	err := store.db.QueryRow(context, sample).Scan(&report.SampleTitle)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, dberr.Wrap(err, "sample_movie")
	}

	return report, nil
}
