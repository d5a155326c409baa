// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gallery serves the company photo gallery.

Gallery items are queried with the same catalog engine as products, under
their own category set, quick filters and sorts. Visitors may like items;
likes live in a [LikeStore] and are layered over the static item stats at
read time, so they never influence filtering or sorting.
*/
package gallery

// # Categories

const (
	CategoryOffice      = "Office"
	CategoryProducts    = "Products"
	CategoryTeam        = "Team"
	CategoryFacility    = "Facility"
	CategoryEvents      = "Events"
	CategoryTech        = "Tech"
	CategoryDevelopment = "Development"
)

// Categories is the enumerated category set, in display order.
var Categories = []string{
	CategoryOffice, CategoryProducts, CategoryTeam, CategoryFacility,
	CategoryEvents, CategoryTech, CategoryDevelopment,
}

// # Thresholds

const (
	// PopularViews is the view count an item must exceed to be "most popular".
	PopularViews = 2000

	// RecentAfterID is the ID an item must exceed to be "recent".
	RecentAfterID = 6
)

// # Entity

// Stats are the engagement figures shipped with an item.
type Stats struct {
	Likes int `json:"likes"`
	Views int `json:"views"`
}

// Item is one gallery entry.
type Item struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Stats       Stats    `json:"stats"`
}

// Popular reports whether the item passes the most-popular threshold.
func (i *Item) Popular() bool {
	return i.Stats.Views > PopularViews
}

// Recent reports whether the item is one of the recent additions.
func (i *Item) Recent() bool {
	return i.ID > RecentAfterID
}

// View is an item as seen by one visitor: Stats.Likes includes visitor
// likes and Liked tells whether this visitor liked it.
type View struct {
	*Item
	Stats Stats `json:"stats"`
	Liked bool  `json:"liked"`
}
