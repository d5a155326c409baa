// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogGalleryItemTable represents the 'catalog.galleryitem' table
type CatalogGalleryItemTable struct {
	Table       string
	ID          string
	Title       string
	Category    string
	Description string
	Tags        string
	Featured    string
	Likes       string
	Views       string
	Position    string
}

// CatalogGalleryItem is the schema definition for catalog.galleryitem
var CatalogGalleryItem = CatalogGalleryItemTable{
	Table:       "catalog.galleryitem",
	ID:          "id",
	Title:       "title",
	Category:    "category",
	Description: "description",
	Tags:        "tags",
	Featured:    "featured",
	Likes:       "likes",
	Views:       "views",
	Position:    "position",
}

// Columns lists the columns scanned into a gallery item, in scan order.
func (t CatalogGalleryItemTable) Columns() []string {
	return []string{t.ID, t.Title, t.Category, t.Description, t.Tags, t.Featured, t.Likes, t.Views}
}
