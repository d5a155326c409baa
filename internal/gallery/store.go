// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import "context"

// Repository is the gallery record store, returning items in store order.
type Repository interface {
	All(ctx context.Context) ([]*Item, error)
	FindByID(ctx context.Context, id int) (*Item, error)
}

// LikeStore records which visitors liked which items.
//
// Toggle flips the like of one visitor on one item and reports the new
// state. Counts returns the number of visitor likes per requested item;
// items without likes may be absent from the map.
type LikeStore interface {
	Toggle(ctx context.Context, visitor string, itemID int) (bool, error)
	LikedBy(ctx context.Context, visitor string) ([]int, error)
	Counts(ctx context.Context, itemIDs []int) (map[int]int, error)
}
