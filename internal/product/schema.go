// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "github.com/taibuivan/traders/internal/catalog"

// Quick filter identifiers.
const (
	FilterFeatured     = "featured"
	FilterInStock      = "inStock"
	FilterFastDelivery = "fastDelivery"
)

// Schema describes products to the catalog engine.
func Schema() catalog.Schema[*Product] {
	return catalog.Schema[*Product]{
		Categories: Categories,
		Category:   func(p *Product) string { return p.Category },
		Text: func(p *Product) []string {
			fields := make([]string, 0, 3+len(p.Tags))
			fields = append(fields, p.Name, p.Vendor, p.Description)
			return append(fields, p.Tags...)
		},
		QuickFilters: []catalog.QuickFilter[*Product]{
			{ID: FilterFeatured, Label: "Featured", Match: func(p *Product) bool { return p.Featured }},
			{ID: FilterInStock, Label: "In Stock", Match: func(p *Product) bool { return p.InStock }},
			{ID: FilterFastDelivery, Label: "Fast Delivery", Match: (*Product).FastDelivery},
		},
		Sorts: []catalog.SortStrategy[*Product]{
			{Key: catalog.SortName, Label: "Name A-Z", Compare: catalog.ByText(func(p *Product) string { return p.Name })},
			{Key: catalog.SortPriceLow, Label: "Price: Low to High", Compare: catalog.Ascending(price)},
			{Key: catalog.SortPriceHigh, Label: "Price: High to Low", Compare: catalog.Descending(price)},
			{Key: catalog.SortRating, Label: "Highest Rated", Compare: catalog.DescendingFloat(func(p *Product) float64 { return p.Rating })},
			{Key: catalog.SortFeatured, Label: "Featured First", Compare: catalog.FlagFirst(func(p *Product) bool { return p.Featured })},
		},
		Defaults: catalog.Params{
			Category: catalog.AllCategories,
			Sort:     catalog.SortFeatured,
			View:     catalog.ViewGrid,
		},
	}
}

// NewEngine builds the catalog engine for products.
func NewEngine() *catalog.Engine[*Product] {
	return catalog.New(Schema())
}

func price(p *Product) int64 {
	return int64(p.Price)
}
