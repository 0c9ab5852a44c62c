// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ycinema/internal/platform/apperr"
	"github.com/taibuivan/ycinema/internal/platform/database/schema"
	"github.com/taibuivan/ycinema/internal/platform/dberr"
	"github.com/taibuivan/ycinema/pkg/query"
)

const resourceItem = "Catalog item"

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL-backed catalog repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Column Projections

var movies = schema.CatalogMovie

// publicColumns is the fixed projection served to the public site.
// Writers, country, release date and seasons are console-only.
var publicColumns = []string{
	movies.ID, movies.Title, movies.FrontImage, movies.BackImage, movies.CarouselImage, movies.Category,
	movies.Rating, movies.Year, movies.Type, movies.Status, movies.Featured, movies.IsNewRelease, movies.IsPopular,
	movies.Top10, movies.Top10Order, movies.CreatedAt, movies.Cast, movies.Director, movies.Description,
	movies.Duration, movies.Certification, movies.Language, movies.Awards, movies.WatchLink,
}

func scanPublic(row pgx.Row) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID, &item.Title, &item.FrontImage, &item.BackImage, &item.CarouselImage, &item.Category,
		&item.Rating, &item.Year, &item.Type, &item.Status, &item.Featured, &item.IsNewRelease, &item.IsPopular,
		&item.Top10, &item.Top10Order, &item.CreatedAt, &item.Cast, &item.Director, &item.Description,
		&item.Duration, &item.Certification, &item.Language, &item.Awards, &item.WatchLink,
	)
	return item, err
}

// scanFull scans the column order of [schema.CatalogMovieTable.Columns].
func scanFull(row pgx.Row) (*Item, error) {
	item := &Item{}
	var seasons []byte
	err := row.Scan(
		&item.ID, &item.Title, &item.Type, &item.Status, &item.Year, &item.Rating, &item.Category, &item.Description,
		&item.FrontImage, &item.BackImage, &item.CarouselImage, &item.WatchLink,
		&item.Featured, &item.IsNewRelease, &item.IsPopular, &item.Top10, &item.Top10Order,
		&item.Director, &item.Cast, &item.Writers, &item.Awards,
		&item.Certification, &item.Duration, &item.Language, &item.Country, &item.ReleaseDate, &seasons,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if len(seasons) > 0 {
		item.Seasons = seasons
	}
	return item, err
}

// fullValues returns the insert arguments in [schema.CatalogMovieTable.Columns] order.
func fullValues(item *Item) []any {
	var seasons []byte
	if len(item.Seasons) > 0 {
		seasons = item.Seasons
	}

	return []any{
		item.ID, item.Title, item.Type, item.Status, item.Year, item.Rating, item.Category, item.Description,
		item.FrontImage, item.BackImage, item.CarouselImage, item.WatchLink,
		item.Featured, item.IsNewRelease, item.IsPopular, item.Top10, item.Top10Order,
		item.Director, nonNil(item.Cast), nonNil(item.Writers), nonNil(item.Awards),
		item.Certification, item.Duration, item.Language, item.Country, item.ReleaseDate, seasons,
		item.CreatedAt, item.UpdatedAt,
	}
}

func nonNil(list StringList) StringList {
	if list == nil {
		return StringList{}
	}
	return list
}

func placeholders(count int) string {
	marks := make([]string, count)
	for i := range marks {
		marks[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(marks, ", ")
}

// # Public Reads

// ListPublished implements [PublishedReader].
func (repository *PostgresRepository) ListPublished(context context.Context) ([]*Item, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC;
	`,
		strings.Join(publicColumns, ", "),
		movies.Table,
		movies.Status,
		movies.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, StatusPublished)
	if err != nil {
		return nil, dberr.Wrap(err, "list_published")
	}
	defer rows.Close()

	items := make([]*Item, 0)
	for rows.Next() {
		item, err := scanPublic(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_published")
		}
		items = append(items, item)
	}

	return items, dberr.Wrap(rows.Err(), "iterate_published")
}

// # Console Reads

// List implements [Repository].
func (repository *PostgresRepository) List(context context.Context, filter ListFilter, limit, offset int) ([]*Item, int, error) {
	var conditions []string
	var arguments []any

	if filter.Query != "" {
		arguments = append(arguments, query.ContainsPattern(filter.Query))
		conditions = append(conditions, fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, movies.Title, len(arguments)))
	}

	if filter.Type != "" && filter.Type != "all" {
		arguments = append(arguments, filter.Type)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", movies.Type, len(arguments)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s;`, movies.Table, where)
	if err := repository.db.QueryRow(context, countQuery, arguments...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_items")
	}

	arguments = append(arguments, limit, offset)
	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s DESC, %s ASC
		LIMIT $%d OFFSET $%d;
	`,
		movies.Select(),
		movies.Table,
		where,
		movies.CreatedAt, movies.ID,
		len(arguments)-1, len(arguments),
	)

	rows, err := repository.db.Query(context, listQuery, arguments...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_items")
	}
	defer rows.Close()

	items := make([]*Item, 0, limit)
	for rows.Next() {
		item, err := scanFull(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_item")
		}
		items = append(items, item)
	}

	return items, total, dberr.Wrap(rows.Err(), "iterate_items")
}

// FindByID implements [Repository].
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1;`, movies.Select(), movies.Table, movies.ID)

	item, err := scanFull(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapAs(err, "find_item", resourceItem)
	}
	return item, nil
}

// # Mutations

// Create implements [Repository].
func (repository *PostgresRepository) Create(context context.Context, item *Item) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s);`,
		movies.Table, movies.Select(), placeholders(len(movies.Columns())))

	_, err := repository.db.Exec(context, query, fullValues(item)...)
	return dberr.Wrap(err, "create_item")
}

// Upsert implements [Repository].
func (repository *PostgresRepository) Upsert(context context.Context, item *Item) error {
	var assignments []string
	for _, column := range movies.Columns() {
		if column == movies.ID || column == movies.CreatedAt {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT (%s) DO UPDATE SET %s
		RETURNING %s;
	`,
		movies.Table, movies.Select(), placeholders(len(movies.Columns())),
		movies.ID, strings.Join(assignments, ", "),
		movies.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, fullValues(item)...).Scan(&item.CreatedAt)
	return dberr.Wrap(err, "upsert_item")
}

// Delete implements [Repository].
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, movies.Table, movies.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_item")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceItem)
	}
	return nil
}

// SetFeatured implements [Repository].
func (repository *PostgresRepository) SetFeatured(context context.Context, id string, featured bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1;`,
		movies.Table, movies.Featured, movies.UpdatedAt, movies.ID)

	return repository.execOne(context, "set_featured", query, id, featured)
}

// SetTop10 implements [Repository].
func (repository *PostgresRepository) SetTop10(context context.Context, id string, top10 bool) error {
	// Joining appends after the current last position. Leaving clears the order.
	query := fmt.Sprintf(`
		UPDATE %[1]s SET
			%[2]s = $2,
			%[3]s = CASE WHEN $2 THEN (SELECT COALESCE(MAX(%[3]s), 0) + 1 FROM %[1]s WHERE %[2]s AND %[4]s <> $1) ELSE 0 END,
			%[5]s = NOW()
		WHERE %[4]s = $1;
	`,
		movies.Table, movies.Top10, movies.Top10Order, movies.ID, movies.UpdatedAt,
	)

	return repository.execOne(context, "set_top10", query, id, top10)
}

func (repository *PostgresRepository) execOne(context context.Context, action, query string, arguments ...any) error {
	tag, err := repository.db.Exec(context, query, arguments...)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceItem)
	}
	return nil
}

// # Dashboard

// Stats implements [Repository].
func (repository *PostgresRepository) Stats(context context.Context) (Stats, error) {
	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE %[1]s = $1),
			COUNT(*) FILTER (WHERE %[1]s = $2)
		FROM %[2]s;
	`, movies.Type, movies.Table)

	var stats Stats
	err := repository.db.QueryRow(context, query, TypeMovie, TypeSeries).Scan(&stats.Total, &stats.Movies, &stats.Series)
	return stats, dberr.Wrap(err, "item_stats")
}

// Recent implements [Repository].
func (repository *PostgresRepository) Recent(context context.Context, limit int) ([]*Summary, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1;
	`,
		movies.ID, movies.Title, movies.Type, movies.Status, movies.Category, movies.Featured, movies.Top10, movies.Top10Order, movies.CreatedAt,
		movies.Table,
		movies.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "recent_items")
	}
	defer rows.Close()

	summaries := make([]*Summary, 0, limit)
	for rows.Next() {
		summary, err := ScanSummary(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_recent")
		}
		summaries = append(summaries, summary)
	}

	return summaries, dberr.Wrap(rows.Err(), "iterate_recent")
}

// ScanSummary scans id, title, type, status, category, featured, top10,
// top10_order and created_at in that order.
func ScanSummary(row pgx.Row) (*Summary, error) {
	summary := &Summary{}
	err := row.Scan(
		&summary.ID, &summary.Title, &summary.Type, &summary.Status, &summary.Category,
		&summary.Featured, &summary.Top10, &summary.Top10Order, &summary.CreatedAt,
	)
	return summary, err
}
