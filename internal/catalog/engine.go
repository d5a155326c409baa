// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/taibuivan/traders/internal/platform/validate"
	"github.com/taibuivan/traders/pkg/pagination"
	"github.com/taibuivan/traders/pkg/slice"
)

// MaxSearchLength caps the free-text search input.
const MaxSearchLength = 200

// Engine evaluates [Params] against records described by a [Schema].
//
// An Engine is immutable after construction and safe for concurrent use.
type Engine[R any] struct {
	schema     Schema[R]
	categories map[string]struct{}
	filters    map[string]Predicate[R]
	sorts      map[SortKey]Comparator[R]
}

// New builds an [Engine] from a schema.
func New[R any](schema Schema[R]) *Engine[R] {
	engine := &Engine[R]{
		schema:     schema,
		categories: make(map[string]struct{}, len(schema.Categories)),
		filters:    make(map[string]Predicate[R], len(schema.QuickFilters)),
		sorts:      make(map[SortKey]Comparator[R], len(schema.Sorts)),
	}

	for _, category := range schema.Categories {
		engine.categories[category] = struct{}{}
	}
	for _, filter := range schema.QuickFilters {
		engine.filters[filter.ID] = filter.Match
	}
	for _, strategy := range schema.Sorts {
		engine.sorts[strategy.Key] = strategy.Compare
	}

	if engine.schema.Defaults.Category == "" {
		engine.schema.Defaults.Category = AllCategories
	}

	return engine
}

// # Query Evaluation

// Matches reports whether a record passes every dimension of params: text,
// category and quick filter. Failing any one excludes the record.
func (engine *Engine[R]) Matches(record R, params Params) bool {
	return engine.compile(params).matches(record)
}

// Compare orders two records under the given sort key. Unknown keys and
// [SortNone] compare every pair as equal.
func (engine *Engine[R]) Compare(a, b R, key SortKey) int {
	compare, ok := engine.sorts[key]
	if !ok {
		return 0
	}
	return compare(a, b)
}

// Derive filters records by params and stable-sorts the survivors.
//
// The result is a new slice; records is left untouched. An empty result is
// a non-nil empty slice.
func (engine *Engine[R]) Derive(records []R, params Params) []R {
	query := engine.compile(params)

	view := slice.Filter(records, query.matches)
	if view == nil {
		view = make([]R, 0)
	}

	if compare, ok := engine.sorts[params.Sort]; ok {
		slices.SortStableFunc(view, compare)
	}

	return view
}

// Paginate cuts one page out of a derived view.
func Paginate[R any](view []R, page pagination.Params) ([]R, pagination.Meta) {
	page = page.Normalize()
	start, end := page.Window(len(view))

	items := make([]R, end-start)
	copy(items, view[start:end])

	return items, pagination.NewMeta(page.Page, page.Limit, len(view))
}

// # Parameter Handling

// Defaults returns the parameters a "reset filters" action restores.
func (engine *Engine[R]) Defaults() Params {
	return engine.schema.Defaults
}

// Normalize canonicalises user input: it trims the search, maps the
// category and quick filter case-insensitively onto their declared
// spelling, treats "all" as no quick filter, and fills an absent category
// and sort from the defaults. Unknown values are kept for [Engine.Validate].
func (engine *Engine[R]) Normalize(params Params) Params {
	params.Search = strings.TrimSpace(params.Search)

	params.Category = strings.TrimSpace(params.Category)
	if params.Category == "" || strings.EqualFold(params.Category, AllCategories) {
		params.Category = AllCategories
	} else if canonical, ok := canonicalFold(params.Category, engine.schema.Categories); ok {
		params.Category = canonical
	}

	params.Filter = strings.TrimSpace(params.Filter)
	if strings.EqualFold(params.Filter, "all") {
		params.Filter = ""
	} else if canonical, ok := canonicalFold(params.Filter, engine.filterIDs()); ok {
		params.Filter = canonical
	}

	if params.Sort == SortNone {
		params.Sort = engine.schema.Defaults.Sort
	}

	return params
}

// Validate rejects parameters that name an unknown category, quick filter
// or sort key.
func (engine *Engine[R]) Validate(params Params) error {
	v := &validate.Validator{}

	v.MaxLen("q", params.Search, MaxSearchLength)

	if params.Category != "" && params.Category != AllCategories {
		_, known := engine.categories[params.Category]
		v.Custom("category", !known, "Unknown category")
	}

	if params.Filter != "" {
		_, known := engine.filters[params.Filter]
		v.Custom("filter", !known, "Unknown quick filter")
	}

	if params.Sort != SortNone {
		_, known := engine.sorts[params.Sort]
		v.Custom("sort", !known, "Unknown sort order")
	}

	if params.View != "" {
		v.OneOf("view", string(params.View), string(ViewGrid), string(ViewList), string(ViewMasonry))
	}

	return v.Err()
}

// Options describes the schema to clients building a filter UI.
func (engine *Engine[R]) Options() Options {
	options := Options{
		Categories:   append([]string{AllCategories}, engine.schema.Categories...),
		QuickFilters: make([]Option, 0, len(engine.schema.QuickFilters)),
		Sorts:        make([]Option, 0, len(engine.schema.Sorts)),
		Defaults:     engine.schema.Defaults,
	}

	for _, filter := range engine.schema.QuickFilters {
		options.QuickFilters = append(options.QuickFilters, Option{Value: filter.ID, Label: filter.Label})
	}
	for _, strategy := range engine.schema.Sorts {
		options.Sorts = append(options.Sorts, Option{Value: string(strategy.Key), Label: strategy.Label})
	}

	return options
}

// Facets counts records per category, "All" first, then in schema order.
// Records in undeclared categories only count towards "All".
func (engine *Engine[R]) Facets(records []R) []Facet {
	counts := make(map[string]int, len(engine.schema.Categories))
	if engine.schema.Category != nil {
		for _, record := range records {
			counts[engine.schema.Category(record)]++
		}
	}

	facets := make([]Facet, 0, len(engine.schema.Categories)+1)
	facets = append(facets, Facet{Category: AllCategories, Count: len(records)})
	for _, category := range engine.schema.Categories {
		facets = append(facets, Facet{Category: category, Count: counts[category]})
	}

	return facets
}

func (engine *Engine[R]) filterIDs() []string {
	ids := make([]string, 0, len(engine.schema.QuickFilters))
	for _, filter := range engine.schema.QuickFilters {
		ids = append(ids, filter.ID)
	}
	return ids
}

func canonicalFold(value string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if strings.EqualFold(value, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// # Compiled Query

// query is params prepared for evaluation over many records.
type query[R any] struct {
	engine   *Engine[R]
	params   Params
	needle   string
	folder   cases.Caser
	filterFn Predicate[R]
	filterOK bool
}

func (engine *Engine[R]) compile(params Params) *query[R] {
	folder := cases.Fold()

	compiled := &query[R]{
		engine:   engine,
		params:   params,
		needle:   folder.String(params.Search),
		folder:   folder,
		filterOK: true,
	}

	if params.Filter != "" {
		compiled.filterFn, compiled.filterOK = engine.filters[params.Filter]
	}

	return compiled
}

func (q *query[R]) matches(record R) bool {
	return q.matchesText(record) && q.matchesCategory(record) && q.matchesQuickFilter(record)
}

func (q *query[R]) matchesText(record R) bool {
	if q.needle == "" {
		return true
	}
	if q.engine.schema.Text == nil {
		return false
	}

	for _, field := range q.engine.schema.Text(record) {
		if strings.Contains(q.folder.String(field), q.needle) {
			return true
		}
	}
	return false
}

func (q *query[R]) matchesCategory(record R) bool {
	category := q.params.Category
	if category == "" || category == AllCategories {
		return true
	}
	if q.engine.schema.Category == nil {
		return false
	}
	return q.engine.schema.Category(record) == category
}

func (q *query[R]) matchesQuickFilter(record R) bool {
	if q.params.Filter == "" {
		return true
	}
	if !q.filterOK || q.filterFn == nil {
		return false
	}
	return q.filterFn(record)
}
