// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "net/http"

// FromRequest reads [Params] from the query string ("q", "category",
// "filter", "sort", "view"). Values are taken verbatim; callers run
// [Engine.Normalize] and [Engine.Validate] afterwards.
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	return Params{
		Search:   query.Get("q"),
		Category: query.Get("category"),
		Filter:   query.Get("filter"),
		Sort:     SortKey(query.Get("sort")),
		View:     ViewMode(query.Get("view")),
	}
}
