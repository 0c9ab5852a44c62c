// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import "context"

// Writer persists normalized entries.
type Writer interface {

	/*
		UpsertEntries inserts or updates every entry in one transaction.
		On conflict only the columns present in an entry are overwritten.

		Parameters:
		  - context: context.Context
		  - entries: []Entry

		Returns:
		  - error: Any failure; nothing is written then
	*/
	UpsertEntries(context context.Context, entries []Entry) error
}

// Report is the connectivity check output.
type Report struct {
	Movies       int    `json:"movies"`
	HomepageRows int    `json:"homepage_config"`
	SampleTitle  string `json:"sample_title,omitempty"`
}

// Inspector reads the row counts used by the connectivity check.
type Inspector interface {
	Inspect(context context.Context) (*Report, error)
}
