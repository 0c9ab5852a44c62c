// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package homepage

import (
	"sort"
	"strings"

	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/pkg/slice"
)

// SectionLimit caps the number of items in one homepage row.
const SectionLimit = 10

// Resolve returns the items of one homepage row, at most [SectionLimit].
// Rows know only the new, popular and top10 presets; any other type,
// "all" included, is a category match.
func Resolve(sectionType string, items []*catalog.Item) []*catalog.Item {
	if strings.EqualFold(sectionType, CategoryAll) {
		return slice.Take(matchCategory(sectionType, items), SectionLimit)
	}
	return slice.Take(FilterCategory(sectionType, items), SectionLimit)
}

/*
FilterCategory returns every item of a category view, without truncation.

  - new: new releases, newest first.
  - popular: popular items, highest rated first.
  - top10: Top 10 items by ascending order.
  - all: the whole catalog in catalog order.
  - anything else: items whose category contains it, ignoring case.

Ties keep catalog order.
*/
func FilterCategory(category string, items []*catalog.Item) []*catalog.Item {
	switch strings.ToLower(category) {
	case CategoryAll:
		return slice.Take(items, len(items))

	case TypeNew:
		result := slice.Filter(items, func(item *catalog.Item) bool { return item.IsNewRelease })
		sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
		return result

	case TypePopular:
		result := slice.Filter(items, func(item *catalog.Item) bool { return item.IsPopular })
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
		return result

	case TypeTop10:
		result := slice.Filter(items, func(item *catalog.Item) bool { return item.Top10 })
		sort.SliceStable(result, func(i, j int) bool { return result[i].Top10Order < result[j].Top10Order })
		return result
	}

	return matchCategory(category, items)
}

// matchCategory keeps items whose category contains category, ignoring case.
func matchCategory(category string, items []*catalog.Item) []*catalog.Item {
	return slice.Filter(items, func(item *catalog.Item) bool {
		return item.Category != "" && item.HasCategory(category)
	})
}
