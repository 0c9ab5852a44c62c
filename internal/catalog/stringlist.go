// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/taibuivan/ycinema/pkg/query"
)

// StringList is the canonical representation of cast, writers and awards.
//
// Stored documents disagree on the shape of these fields. Decoding accepts:
//
//   - a JSON array of strings: ["A", "B"]
//   - a JSON string holding an encoded array: "[\"A\", \"B\"]"
//   - a comma-separated string: "A, B"
//   - null
//
// Encoding always produces a JSON array, never null.
type StringList []string

// ParseStringList converts free text into a list using the same fallback chain
// as [StringList.UnmarshalJSON]: an encoded JSON array first, then a comma split.
func ParseStringList(text string) StringList {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") {
		var encoded []string
		if err := json.Unmarshal([]byte(trimmed), &encoded); err == nil {
			return compact(encoded)
		}
	}
	return StringList(query.StringSlice(trimmed))
}

// UnmarshalJSON implements json.Unmarshaler.
func (list *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*list = nil
		return nil

	case data[0] == '[':
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("catalog: list must contain only strings: %w", err)
		}
		*list = compact(values)
		return nil

	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*list = ParseStringList(text)
		return nil
	}

	return fmt.Errorf("catalog: unsupported list value %s", data)
}

// MarshalJSON implements json.Marshaler.
func (list StringList) MarshalJSON() ([]byte, error) {
	if list == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(list))
}

// String joins the entries the way the admin form displays them.
func (list StringList) String() string {
	return strings.Join(list, ", ")
}

// compact trims entries and drops empty ones.
func compact(values []string) StringList {
	result := make(StringList, 0, len(values))
	for _, value := range values {
		if clean := strings.TrimSpace(value); clean != "" {
			result = append(result, clean)
		}
	}
	return result
}
