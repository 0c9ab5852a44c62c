// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// # Catalog Data Access

// PublishedReader is the public read contract used by the [Loader].
type PublishedReader interface {

	/*
		ListPublished returns every published item using the public projection,
		newest first.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Item: Published items (possibly empty)
		  - error: Database retrieval failures
	*/
	ListPublished(context context.Context) ([]*Item, error)
}

// Repository defines the data access contract for catalog items.
type Repository interface {
	PublishedReader

	/*
		List returns a filtered, paginated slice of items of any status,
		newest first, and the total count.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter (Title substring and type)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Item: Matching records
		  - int: Total count of records matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter ListFilter, limit, offset int) ([]*Item, int, error)

	/*
		FindByID returns the item with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Item: The hydrated entity
		  - error: apperr NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Item, error)

	/*
		Create inserts a new item.

		Parameters:
		  - context: context.Context
		  - item: *Item (ID and timestamps already assigned)

		Returns:
		  - error: Conflict on duplicate ID, or storage failures
	*/
	Create(context context.Context, item *Item) error

	/*
		Upsert inserts the item or replaces every mutable column of the row
		with the same ID. CreatedAt of an existing row is preserved.

		Parameters:
		  - context: context.Context
		  - item: *Item

		Returns:
		  - error: Storage failures
	*/
	Upsert(context context.Context, item *Item) error

	/*
		Delete removes the item permanently.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr NotFound if no row was deleted
	*/
	Delete(context context.Context, id string) error

	/*
		SetFeatured flips the hero carousel flag of one item.

		Parameters:
		  - context: context.Context
		  - id: string
		  - featured: bool

		Returns:
		  - error: apperr NotFound if missing
	*/
	SetFeatured(context context.Context, id string, featured bool) error

	/*
		SetTop10 adds the item to the end of the Top 10 list, or removes it
		and clears its order.

		Parameters:
		  - context: context.Context
		  - id: string
		  - top10: bool

		Returns:
		  - error: apperr NotFound if missing
	*/
	SetTop10(context context.Context, id string, top10 bool) error

	// Stats counts items by type.
	Stats(context context.Context) (Stats, error)

	// Recent returns the newest items regardless of status.
	Recent(context context.Context, limit int) ([]*Summary, error)
}
