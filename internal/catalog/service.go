// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/ycinema/internal/platform/ctxutil"
	"github.com/taibuivan/ycinema/internal/platform/validate"
	"github.com/taibuivan/ycinema/pkg/uuid"
)

// RecentLimit is how many items the dashboard lists.
const RecentLimit = 5

// Service implements the console use cases for catalog items.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new catalog service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// # Reads

// List returns one page of items of any status.
func (service *Service) List(context context.Context, filter ListFilter, limit, offset int) ([]*Item, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.List(context, filter, limit, offset)
}

// Get returns a single item by ID.
func (service *Service) Get(context context.Context, id string) (*Item, error) {
	return service.repo.FindByID(context, id)
}

// Dashboard returns the counters and the most recently added items.
func (service *Service) Dashboard(context context.Context) (*Dashboard, error) {
	stats, err := service.repo.Stats(context)
	if err != nil {
		return nil, err
	}

	recent, err := service.repo.Recent(context, RecentLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{Stats: stats, Recent: recent}, nil
}

// # Mutations

/*
Create validates and stores a new item under a freshly generated ID.

Parameters:
  - context: context.Context
  - item: *Item (ID and timestamps are overwritten)

Returns:
  - error: Validation or storage failures
*/
func (service *Service) Create(context context.Context, item *Item) error {
	Normalize(item)
	if err := Validate(item); err != nil {
		return err
	}

	now := service.now().UTC()
	item.ID = uuid.New()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := service.repo.Create(context, item); err != nil {
		return err
	}

	service.logger.InfoContext(context, "catalog_item_created",
		slog.String("item_id", item.ID),
		slog.String("title", item.Title),
		slog.String("actor_id", ctxutil.ActorID(context)),
	)
	return nil
}

/*
Save replaces the item stored under id, creating it when absent.

Parameters:
  - context: context.Context
  - id: string (path identifier, wins over any ID in the payload)
  - item: *Item

Returns:
  - error: Validation or storage failures
*/
func (service *Service) Save(context context.Context, id string, item *Item) error {
	item.ID = id
	Normalize(item)
	if err := Validate(item); err != nil {
		return err
	}

	now := service.now().UTC()
	item.UpdatedAt = now
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}

	if err := service.repo.Upsert(context, item); err != nil {
		return err
	}

	service.logger.InfoContext(context, "catalog_item_saved",
		slog.String("item_id", item.ID),
		slog.String("actor_id", ctxutil.ActorID(context)),
	)
	return nil
}

// Delete removes an item permanently.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "catalog_item_deleted",
		slog.String("item_id", id),
		slog.String("actor_id", ctxutil.ActorID(context)),
	)
	return nil
}

// SetFeatured flags or unflags an item for the hero carousel.
func (service *Service) SetFeatured(context context.Context, id string, featured bool) error {
	if err := service.repo.SetFeatured(context, id, featured); err != nil {
		return err
	}

	service.logger.InfoContext(context, "catalog_featured_changed",
		slog.String("item_id", id),
		slog.Bool("featured", featured),
	)
	return nil
}

// SetTop10 adds an item to the end of the Top 10 or removes it.
func (service *Service) SetTop10(context context.Context, id string, top10 bool) error {
	if err := service.repo.SetTop10(context, id, top10); err != nil {
		return err
	}

	service.logger.InfoContext(context, "catalog_top10_changed",
		slog.String("item_id", id),
		slog.Bool("top10", top10),
	)
	return nil
}

// # Rules

// Normalize trims text fields and applies the type and status defaults.
func Normalize(item *Item) {
	item.ID = strings.TrimSpace(item.ID)
	item.Title = strings.TrimSpace(item.Title)
	item.Category = strings.TrimSpace(item.Category)
	item.Director = strings.TrimSpace(item.Director)

	if item.Type == "" {
		item.Type = TypeMovie
	}
	if item.Status == "" {
		item.Status = StatusPublished
	}
	if !item.Top10 {
		item.Top10Order = 0
	}
}

// Validate checks the console form constraints.
func Validate(item *Item) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, item.Title).MaxLen(FieldTitle, item.Title, 300)
	validator.OneOf(FieldType, string(item.Type), string(TypeMovie), string(TypeSeries))
	validator.OneOf(FieldStatus, string(item.Status), string(StatusDraft), string(StatusPublished))
	validator.FloatRange(FieldRating, item.Rating, 0, 10)
	validator.Custom(FieldYear, item.Year != 0 && (item.Year < 1888 || item.Year > 2100), "Must be a valid release year")
	validator.Range(FieldTop10Order, item.Top10Order, 0, 1000)

	validator.OptionalURL(FieldFrontImage, item.FrontImage)
	validator.OptionalURL(FieldBackImage, item.BackImage)
	validator.OptionalURL(FieldCarousel, item.CarouselImage)
	validator.OptionalURL(FieldWatchLink, item.WatchLink)

	return validator.Err()
}
