// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "github.com/taibuivan/ycinema/pkg/slice"

const (
	// FeaturedFallbackCount is how many leading items fill the hero carousel
	// when nothing is flagged featured.
	FeaturedFallbackCount = 5

	// RelatedLimit caps the "more like this" row on the detail view.
	RelatedLimit = 4
)

// Featured returns the hero carousel items: every featured item, or the first
// [FeaturedFallbackCount] items when none is flagged.
func Featured(items []*Item) []*Item {
	featured := slice.Filter(items, func(item *Item) bool { return item.Featured })
	if len(featured) > 0 {
		return featured
	}
	return slice.Take(items, FeaturedFallbackCount)
}

// Related returns up to [RelatedLimit] other items that share the first genre of target.
// An item without a category has no related items.
func Related(target *Item, items []*Item) []*Item {
	genre := target.PrimaryGenre()
	if genre == "" {
		return []*Item{}
	}

	related := slice.Filter(items, func(item *Item) bool {
		return item.ID != target.ID && item.HasCategory(genre)
	})
	return slice.Take(related, RelatedLimit)
}

// FindByID returns the item with the given id from an in-memory list.
func FindByID(items []*Item, id string) (*Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}
