// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/platform/apperr"
)

// memoryRepository is an in-memory [catalog.Repository].
type memoryRepository struct {
	mu    sync.Mutex
	items map[string]*catalog.Item
	order []string
}

func newMemoryRepository(items ...*catalog.Item) *memoryRepository {
	repository := &memoryRepository{items: make(map[string]*catalog.Item)}
	for _, item := range items {
		repository.items[item.ID] = item
		repository.order = append(repository.order, item.ID)
	}
	return repository
}

func (repository *memoryRepository) all() []*catalog.Item {
	result := make([]*catalog.Item, 0, len(repository.order))
	for _, id := range repository.order {
		if item, ok := repository.items[id]; ok {
			result = append(result, item)
		}
	}
	return result
}

func (repository *memoryRepository) ListPublished(context.Context) ([]*catalog.Item, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var result []*catalog.Item
	for _, item := range repository.all() {
		if item.Status == catalog.StatusPublished {
			result = append(result, item)
		}
	}
	return result, nil
}

func (repository *memoryRepository) List(_ context.Context, filter catalog.ListFilter, limit, offset int) ([]*catalog.Item, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var matched []*catalog.Item
	for _, item := range repository.all() {
		if filter.Query != "" && !strings.Contains(strings.ToLower(item.Title), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.Type != "" && filter.Type != "all" && string(item.Type) != filter.Type {
			continue
		}
		matched = append(matched, item)
	}

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)
	return matched[offset:end], total, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*catalog.Item, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound("Catalog item")
	}
	return item, nil
}

func (repository *memoryRepository) Create(_ context.Context, item *catalog.Item) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.items[item.ID]; exists {
		return apperr.Conflict("A record with the same identity already exists")
	}
	repository.items[item.ID] = item
	repository.order = append(repository.order, item.ID)
	return nil
}

func (repository *memoryRepository) Upsert(_ context.Context, item *catalog.Item) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if existing, ok := repository.items[item.ID]; ok {
		item.CreatedAt = existing.CreatedAt
	} else {
		repository.order = append(repository.order, item.ID)
	}
	repository.items[item.ID] = item
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound("Catalog item")
	}
	delete(repository.items, id)
	return nil
}

func (repository *memoryRepository) SetFeatured(_ context.Context, id string, featured bool) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item, ok := repository.items[id]
	if !ok {
		return apperr.NotFound("Catalog item")
	}
	item.Featured = featured
	return nil
}

func (repository *memoryRepository) SetTop10(_ context.Context, id string, top10 bool) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item, ok := repository.items[id]
	if !ok {
		return apperr.NotFound("Catalog item")
	}

	item.Top10 = top10
	item.Top10Order = 0
	if top10 {
		highest := 0
		for _, other := range repository.items {
			if other.ID != id && other.Top10 && other.Top10Order > highest {
				highest = other.Top10Order
			}
		}
		item.Top10Order = highest + 1
	}
	return nil
}

func (repository *memoryRepository) Stats(context.Context) (catalog.Stats, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var stats catalog.Stats
	for _, item := range repository.items {
		stats.Total++
		switch item.Type {
		case catalog.TypeMovie:
			stats.Movies++
		case catalog.TypeSeries:
			stats.Series++
		}
	}
	return stats, nil
}

func (repository *memoryRepository) Recent(_ context.Context, limit int) ([]*catalog.Summary, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	items := repository.all()
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	summaries := make([]*catalog.Summary, 0, limit)
	for _, item := range items {
		if len(summaries) == limit {
			break
		}
		summaries = append(summaries, &catalog.Summary{ID: item.ID, Title: item.Title, Type: item.Type, CreatedAt: item.CreatedAt})
	}
	return summaries, nil
}

func newService(items ...*catalog.Item) (*catalog.Service, *memoryRepository) {
	repository := newMemoryRepository(items...)
	return catalog.NewService(repository, discardLogger()), repository
}

/*
TestService_Create assigns an ID and defaults, and rejects invalid input.
*/
func TestService_Create(t *testing.T) {
	service, repository := newService()

	item := &catalog.Item{ID: "client-chosen", Title: "  Dune: Part Two ", Rating: 8.6}
	require.NoError(t, service.Create(context.Background(), item))

	assert.NotEqual(t, "client-chosen", item.ID)
	assert.Equal(t, "Dune: Part Two", item.Title)
	assert.Equal(t, catalog.TypeMovie, item.Type)
	assert.Equal(t, catalog.StatusPublished, item.Status)
	assert.False(t, item.CreatedAt.IsZero())

	stored, err := repository.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Same(t, item, stored)
}

/*
TestService_CreateValidation checks each console form constraint.
*/
func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		item  catalog.Item
		field string
	}{
		{"missing_title", catalog.Item{Title: " "}, catalog.FieldTitle},
		{"unknown_type", catalog.Item{Title: "X", Type: "short"}, catalog.FieldType},
		{"unknown_status", catalog.Item{Title: "X", Status: "archived"}, catalog.FieldStatus},
		{"rating_above_ten", catalog.Item{Title: "X", Rating: 10.5}, catalog.FieldRating},
		{"negative_rating", catalog.Item{Title: "X", Rating: -1}, catalog.FieldRating},
		{"implausible_year", catalog.Item{Title: "X", Year: 1500}, catalog.FieldYear},
		{"bad_image_url", catalog.Item{Title: "X", FrontImage: "ftp://host/a.jpg"}, catalog.FieldFrontImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService()

			err := service.Create(context.Background(), &tt.item)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
		})
	}
}

/*
TestService_Save upserts under the path ID and keeps the original creation time.
*/
func TestService_Save(t *testing.T) {
	service, repository := newService()
	ctx := context.Background()

	original := &catalog.Item{Title: "Dark", Type: catalog.TypeSeries}
	require.NoError(t, service.Create(ctx, original))
	createdAt := original.CreatedAt

	update := &catalog.Item{ID: "ignored", Title: "Dark (2017)", Type: catalog.TypeSeries, Status: catalog.StatusDraft}
	require.NoError(t, service.Save(ctx, original.ID, update))

	stored, err := repository.FindByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dark (2017)", stored.Title)
	assert.Equal(t, catalog.StatusDraft, stored.Status)
	assert.Equal(t, createdAt, stored.CreatedAt)

	require.NoError(t, service.Save(ctx, "brand-new", &catalog.Item{Title: "The Raid"}))
	_, err = repository.FindByID(ctx, "brand-new")
	assert.NoError(t, err)
}

/*
TestService_Top10Toggle appends to the list and clears the order on removal.
*/
func TestService_Top10Toggle(t *testing.T) {
	service, repository := newService(
		&catalog.Item{ID: "a", Top10: true, Top10Order: 1},
		&catalog.Item{ID: "b", Top10: true, Top10Order: 2},
		&catalog.Item{ID: "c"},
	)
	ctx := context.Background()

	require.NoError(t, service.SetTop10(ctx, "c", true))
	assert.Equal(t, 3, repository.items["c"].Top10Order)

	require.NoError(t, service.SetTop10(ctx, "a", false))
	assert.False(t, repository.items["a"].Top10)
	assert.Zero(t, repository.items["a"].Top10Order)

	err := service.SetTop10(ctx, "missing", true)
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Dashboard counts by type and lists the newest items.
*/
func TestService_Dashboard(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	for _, item := range []*catalog.Item{
		{Title: "Dune"}, {Title: "The Raid"}, {Title: "Dark", Type: catalog.TypeSeries},
		{Title: "1899", Type: catalog.TypeSeries}, {Title: "Arrival"}, {Title: "Tenet"},
	} {
		require.NoError(t, service.Create(ctx, item))
	}

	dashboard, err := service.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Stats{Total: 6, Movies: 4, Series: 2}, dashboard.Stats)
	assert.Len(t, dashboard.Recent, catalog.RecentLimit)
}

/*
TestService_Delete reports missing items.
*/
func TestService_Delete(t *testing.T) {
	service, _ := newService(&catalog.Item{ID: "a", Title: "A"})

	require.NoError(t, service.Delete(context.Background(), "a"))
	assert.Equal(t, "NOT_FOUND", apperr.As(service.Delete(context.Background(), "a")).Code)
}
