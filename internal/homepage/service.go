// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package homepage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/platform/ctxutil"
	"github.com/taibuivan/ycinema/internal/platform/validate"
	"github.com/taibuivan/ycinema/pkg/slice"
)

const (
	maxSections   = 50
	maxTitleLen   = 120
	fieldSections = "sections"
)

// Settings is the console settings view.
type Settings struct {
	Sections       []Section          `json:"sections"`
	Top10          []*catalog.Summary `json:"top10"`
	Items          []*catalog.Summary `json:"items"`
	AvailableTypes []string           `json:"available_types"`
}

// SettingsInput is the payload of a settings save.
type SettingsInput struct {
	Sections []Section `json:"sections"`

	// Top10 lists item IDs in their new order.
	Top10 []string `json:"top10"`
}

// Service implements homepage layout reads and settings writes.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new homepage service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Layout returns the saved sections, or [DefaultSections] when none is saved
// or the store cannot be read. It never fails.
func (service *Service) Layout(context context.Context) []Section {
	sections, found, err := service.repo.GetLayout(context)
	if err != nil {
		service.logger.WarnContext(context, "homepage_layout_defaulted", slog.Any("error", err))
		return DefaultSections()
	}
	if !found {
		return DefaultSections()
	}
	return sections
}

// Settings returns the layout, the ordered Top 10 and every item.
func (service *Service) Settings(context context.Context) (*Settings, error) {
	sections, found, err := service.repo.GetLayout(context)
	if err != nil {
		return nil, err
	}
	if !found {
		sections = DefaultSections()
	}

	items, err := service.repo.ListSummaries(context)
	if err != nil {
		return nil, err
	}

	return &Settings{
		Sections:       sections,
		Top10:          slice.Filter(items, func(item *catalog.Summary) bool { return item.Top10 }),
		Items:          items,
		AvailableTypes: AvailableTypes,
	}, nil
}

/*
SaveSettings validates and persists the layout together with the Top 10 order.

Sections without an ID or title receive generated ones. Duplicate Top 10 IDs
keep their first position.

Parameters:
  - context: context.Context
  - input: SettingsInput

Returns:
  - []Section: The normalized sections as stored
  - error: Validation or storage failures
*/
func (service *Service) SaveSettings(context context.Context, input SettingsInput) ([]Section, error) {
	sections, err := service.normalizeSections(input.Sections)
	if err != nil {
		return nil, err
	}

	topIDs := make([]string, 0, len(input.Top10))
	for _, id := range input.Top10 {
		if id = strings.TrimSpace(id); id != "" {
			topIDs = append(topIDs, id)
		}
	}
	topIDs = slice.UniqueBy(topIDs, func(id string) string { return id })

	if err := service.repo.SaveSettings(context, sections, topIDs); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "homepage_settings_saved",
		slog.Int("sections", len(sections)),
		slog.Int("top10", len(topIDs)),
		slog.String("actor_id", ctxutil.ActorID(context)),
	)
	return sections, nil
}

func (service *Service) normalizeSections(input []Section) ([]Section, error) {
	validator := &validate.Validator{}
	validator.Custom(fieldSections, len(input) > maxSections, fmt.Sprintf("Must not exceed %d sections", maxSections))

	now := service.now()
	seen := make(map[string]struct{}, len(input))
	sections := make([]Section, 0, len(input))

	for i, section := range input {
		field := fmt.Sprintf("%s[%d]", fieldSections, i)

		section.Type = strings.TrimSpace(section.Type)
		section.Title = strings.TrimSpace(section.Title)
		section.ID = strings.TrimSpace(section.ID)

		validator.Required(field+".type", section.Type)
		validator.MaxLen(field+".title", section.Title, maxTitleLen)

		if section.Title == "" {
			section.Title = DefaultTitle(section.Type)
		}

		// Rows added in the same millisecond still need distinct IDs.
		if _, dup := seen[section.ID]; section.ID == "" || dup {
			section.ID = NewSectionID(section.Type, now.Add(time.Duration(i)*time.Millisecond))
		}
		seen[section.ID] = struct{}{}

		sections = append(sections, section)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}
