// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-valued URL query parameters.
package query

import "strings"

// List splits a comma-separated parameter ("Pending, processing") into its
// trimmed, non-empty entries. Entries equal under case folding are kept
// once, in first-seen spelling. An empty value yields nil.
func List(value string) []string {
	var (
		entries []string
		seen    = make(map[string]struct{})
	)

	for _, part := range strings.Split(value, ",") {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}

		key := strings.ToLower(entry)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, entry)
	}

	return entries
}
