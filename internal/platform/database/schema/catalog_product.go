// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package schema names the PostgreSQL tables and columns used by the
repositories, so that query builders never hard-code identifiers.
*/
package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table        string
	ID           string
	Slug         string
	Name         string
	Category     string
	PricePaise   string
	PriceDisplay string
	Vendor       string
	Rating       string
	InStock      string
	Featured     string
	Delivery     string
	Warranty     string
	Image        string
	Description  string
	Tags         string
	Position     string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:        "catalog.product",
	ID:           "id",
	Slug:         "slug",
	Name:         "name",
	Category:     "category",
	PricePaise:   "pricepaise",
	PriceDisplay: "pricedisplay",
	Vendor:       "vendor",
	Rating:       "rating",
	InStock:      "instock",
	Featured:     "featured",
	Delivery:     "delivery",
	Warranty:     "warranty",
	Image:        "image",
	Description:  "description",
	Tags:         "tags",
	Position:     "position",
}

// Columns lists the columns scanned into a product, in scan order.
func (t CatalogProductTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Name, t.Category, t.PricePaise, t.PriceDisplay, t.Vendor,
		t.Rating, t.InStock, t.Featured, t.Delivery, t.Warranty, t.Image,
		t.Description, t.Tags,
	}
}
