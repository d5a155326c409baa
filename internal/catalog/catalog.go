// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog implements the query engine shared by the product catalog and
the gallery.

A collection describes itself once with a [Schema]: its category set, which
text is searchable, its quick filters and its sort strategies. An [Engine]
built from that schema turns a static record slice and a set of [Params]
into a derived view:

 1. every record is tested against the conjunction of text, category and
    quick-filter predicates;
 2. the survivors are copied into a fresh slice;
 3. the copy is stable-sorted by the selected strategy.

The engine holds no state between calls. The input slice is never mutated,
and the same inputs always yield the same ordered output.
*/
package catalog

// AllCategories is the category value that disables category filtering.
const AllCategories = "All"

// # Sort Keys

// SortKey names a sort strategy.
type SortKey string

const (
	// SortNone keeps the record store order.
	SortNone SortKey = ""

	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortFeatured  SortKey = "featured"
	SortPopular   SortKey = "popular"
	SortRecent    SortKey = "recent"
)

// # View Modes

// ViewMode is the client's layout choice. It travels with the query so a
// view can be restored from a URL, but never affects the derived records.
type ViewMode string

const (
	ViewGrid    ViewMode = "grid"
	ViewList    ViewMode = "list"
	ViewMasonry ViewMode = "masonry"
)

// # Query Parameters

// Params is the serialisable query state of a catalog view.
type Params struct {
	// Search is matched case-insensitively; empty matches everything.
	Search string `json:"q,omitempty"`

	// Category is [AllCategories] or one of the schema's categories.
	Category string `json:"category"`

	// Filter is the single active quick filter ID, or empty for none.
	Filter string `json:"filter,omitempty"`

	// Sort selects the ordering of the derived view.
	Sort SortKey `json:"sort,omitempty"`

	View ViewMode `json:"view,omitempty"`
}

// # Schema

// Predicate decides whether a record passes a quick filter.
type Predicate[R any] func(record R) bool

// Comparator orders two records: negative when a sorts first, zero when the
// pair is tied (store order is then kept), positive otherwise.
type Comparator[R any] func(a, b R) int

// QuickFilter is a named single-select predicate.
type QuickFilter[R any] struct {
	ID    string
	Label string
	Match Predicate[R]
}

// SortStrategy is a named comparator.
type SortStrategy[R any] struct {
	Key     SortKey
	Label   string
	Compare Comparator[R]
}

// Schema describes one record collection to the engine.
type Schema[R any] struct {
	// Categories is the enumerated category set, in display order.
	Categories []string

	// Category returns the record's category.
	Category func(record R) string

	// Text returns every searchable string of the record (name, description,
	// tags, ...). Nil disables text matching: only an empty search matches.
	Text func(record R) []string

	QuickFilters []QuickFilter[R]
	Sorts        []SortStrategy[R]

	// Defaults is what "reset filters" restores.
	Defaults Params
}

// # UI Options

// Option is a value/label pair for selects and filter chips.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options lists what a client may put into [Params].
type Options struct {
	Categories   []string `json:"categories"`
	QuickFilters []Option `json:"quick_filters"`
	Sorts        []Option `json:"sorts"`
	Defaults     Params   `json:"defaults"`
}

// Facet is the number of records in one category.
type Facet struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
