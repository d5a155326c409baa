// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product serves the B2B product catalog.

Products are immutable records. Listing runs the shared catalog engine over
the whole record store on every request: filter by search, category and one
quick filter, then stable-sort. The store is small and static, so nothing
is cached between requests.
*/
package product

import "github.com/taibuivan/traders/pkg/money"

// # Categories

const (
	CategorySoftware  = "Software"
	CategoryHardware  = "Hardware"
	CategoryServices  = "Services"
	CategoryFurniture = "Furniture"
)

// Categories is the enumerated category set, in display order.
var Categories = []string{CategorySoftware, CategoryHardware, CategoryServices, CategoryFurniture}

// DeliveryInstant is the delivery class matched by the fast delivery filter.
const DeliveryInstant = "Instant"

// MaxRating is the upper bound of a product rating.
const MaxRating = 5.0

// # Entity

// Product is one catalog listing offered by a vendor.
type Product struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`

	Category string `json:"category"`

	// Price is [money.Invalid] when PriceDisplay could not be parsed.
	Price        money.Amount `json:"price"`
	PriceDisplay string       `json:"price_display"`

	Vendor   string  `json:"vendor"`
	Rating   float64 `json:"rating"`
	InStock  bool    `json:"in_stock"`
	Featured bool    `json:"featured"`

	// Delivery is a delivery class such as "Instant" or "3-5 Days".
	Delivery string `json:"delivery"`
	Warranty string `json:"warranty"`

	Image       string   `json:"image"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// FastDelivery reports whether the product ships instantly.
func (p *Product) FastDelivery() bool {
	return p.Delivery == DeliveryInstant
}
