// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import "github.com/taibuivan/traders/internal/catalog"

// Quick filter identifiers.
const (
	FilterFeatured    = "featured"
	FilterMostPopular = "most-popular"
	FilterRecent      = "recent"
)

// Schema describes gallery items to the catalog engine.
func Schema() catalog.Schema[*Item] {
	return catalog.Schema[*Item]{
		Categories: Categories,
		Category:   func(i *Item) string { return i.Category },
		Text: func(i *Item) []string {
			fields := make([]string, 0, 2+len(i.Tags))
			fields = append(fields, i.Title, i.Description)
			return append(fields, i.Tags...)
		},
		QuickFilters: []catalog.QuickFilter[*Item]{
			{ID: FilterFeatured, Label: "Featured", Match: func(i *Item) bool { return i.Featured }},
			{ID: FilterMostPopular, Label: "Most Popular", Match: (*Item).Popular},
			{ID: FilterRecent, Label: "Recent", Match: (*Item).Recent},
		},
		Sorts: []catalog.SortStrategy[*Item]{
			{Key: catalog.SortName, Label: "Title A-Z", Compare: catalog.ByText(func(i *Item) string { return i.Title })},
			{Key: catalog.SortFeatured, Label: "Featured First", Compare: catalog.FlagFirst(func(i *Item) bool { return i.Featured })},
			{Key: catalog.SortPopular, Label: "Most Viewed", Compare: catalog.Descending(func(i *Item) int64 { return int64(i.Stats.Views) })},
			{Key: catalog.SortRecent, Label: "Newest", Compare: catalog.Descending(func(i *Item) int64 { return int64(i.ID) })},
		},
		Defaults: catalog.Params{
			Category: catalog.AllCategories,
			View:     catalog.ViewGrid,
		},
	}
}

// NewEngine builds the catalog engine for gallery items.
func NewEngine() *catalog.Engine[*Item] {
	return catalog.New(Schema())
}
