// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package homepage

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/platform/apperr"
	"github.com/taibuivan/ycinema/internal/platform/database/schema"
	"github.com/taibuivan/ycinema/internal/platform/dberr"
	"github.com/taibuivan/ycinema/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL-backed settings repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetLayout implements [Repository].
func (repository *PostgresRepository) GetLayout(context context.Context) ([]Section, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1;`,
		schema.HomepageConfig.Value, schema.HomepageConfig.Table, schema.HomepageConfig.Key)

	var raw []byte
	err := repository.db.QueryRow(context, query, LayoutKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, dberr.Wrap(err, "get_layout")
	}

	var sections []Section
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, false, apperr.Internal(fmt.Errorf("decode %s: %w", LayoutKey, err))
	}

	return sections, true, nil
}

// SaveSettings implements [Repository].
func (repository *PostgresRepository) SaveSettings(context context.Context, sections []Section, topIDs []string) error {
	value, err := json.Marshal(sections)
	if err != nil {
		return apperr.Internal(fmt.Errorf("encode %s: %w", LayoutKey, err))
	}

	upsertLayout := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%[2]s) DO UPDATE SET %[3]s = EXCLUDED.%[3]s, %[4]s = EXCLUDED.%[4]s;
	`,
		schema.HomepageConfig.Table, schema.HomepageConfig.Key,
		schema.HomepageConfig.Value, schema.HomepageConfig.UpdatedAt,
	)

	// One statement renumbers the whole list.
	reorder := fmt.Sprintf(`
		UPDATE %[1]s AS target
		SET %[2]s = TRUE, %[3]s = input.position, %[4]s = NOW()
		FROM unnest($1::text[], $2::int[]) AS input(id, position)
		WHERE target.%[5]s = input.id;
	`,
		schema.CatalogMovie.Table, schema.CatalogMovie.Top10,
		schema.CatalogMovie.Top10Order, schema.CatalogMovie.UpdatedAt,
		schema.CatalogMovie.ID,
	)

	positions := make([]int32, len(topIDs))
	for i := range topIDs {
		positions[i] = int32(i + 1)
	}

	return postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(context, upsertLayout, LayoutKey, value); err != nil {
			return dberr.Wrap(err, "upsert_layout")
		}

		if len(topIDs) == 0 {
			return nil
		}

		tag, err := tx.Exec(context, reorder, topIDs, positions)
		if err != nil {
			return dberr.Wrap(err, "reorder_top10")
		}
		if tag.RowsAffected() != int64(len(topIDs)) {
			return apperr.BadRequest("Top 10 list references items that no longer exist")
		}
		return nil
	})
}

// ListSummaries implements [Repository].
func (repository *PostgresRepository) ListSummaries(context context.Context) ([]*catalog.Summary, error) {
	movies := schema.CatalogMovie
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC, %s ASC, %s ASC;
	`,
		movies.ID, movies.Title, movies.Type, movies.Status, movies.Category,
		movies.Featured, movies.Top10, movies.Top10Order, movies.CreatedAt,
		movies.Table,
		movies.Top10, movies.Top10Order, movies.Title,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_summaries")
	}
	defer rows.Close()

	summaries := make([]*catalog.Summary, 0)
	for rows.Next() {
		summary, err := catalog.ScanSummary(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_summary")
		}
		summaries = append(summaries, summary)
	}

	return summaries, dberr.Wrap(rows.Err(), "iterate_summaries")
}
