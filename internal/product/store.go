// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// Repository is the product record store.
//
// All returns every product in store order, which is the order the catalog
// falls back to for ties.
type Repository interface {
	All(ctx context.Context) ([]*Product, error)
	FindByID(ctx context.Context, id int) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
}
