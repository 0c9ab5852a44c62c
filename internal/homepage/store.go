// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package homepage

import (
	"context"

	"github.com/taibuivan/ycinema/internal/catalog"
)

// # Settings Data Access

// Repository defines the data access contract for homepage settings.
type Repository interface {

	/*
		GetLayout returns the stored section list.

		Parameters:
		  - context: context.Context

		Returns:
		  - []Section: Stored sections in display order
		  - bool: False when no layout has been saved yet
		  - error: Database or decoding failures
	*/
	GetLayout(context context.Context) ([]Section, bool, error)

	/*
		SaveSettings stores the layout and renumbers the Top 10 in one
		transaction. topIDs[i] receives order i+1.

		Parameters:
		  - context: context.Context
		  - sections: []Section
		  - topIDs: []string (distinct item IDs)

		Returns:
		  - error: BadRequest when an ID does not exist; nothing is written then
	*/
	SaveSettings(context context.Context, sections []Section, topIDs []string) error

	// ListSummaries returns every item, Top 10 first by order, then by title.
	ListSummaries(context context.Context) ([]*catalog.Summary, error)
}
