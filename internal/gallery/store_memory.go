// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/traders/internal/platform/apperr"
)

// ErrNotFound is returned when no gallery item matches an ID.
var ErrNotFound = apperr.NotFound("Gallery item")

// # Items

// MemoryRepository serves a fixed item list held in memory.
type MemoryRepository struct {
	items []*Item
	byID  map[int]*Item
}

// NewMemoryRepository indexes items. The slice is copied; the records are
// shared and must not be modified afterwards.
func NewMemoryRepository(items []*Item) *MemoryRepository {
	repository := &MemoryRepository{
		items: slices.Clone(items),
		byID:  make(map[int]*Item, len(items)),
	}
	for _, item := range items {
		repository.byID[item.ID] = item
	}
	return repository
}

func (repository *MemoryRepository) All(_ context.Context) ([]*Item, error) {
	return slices.Clone(repository.items), nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id int) (*Item, error) {
	if item, ok := repository.byID[id]; ok {
		return item, nil
	}
	return nil, ErrNotFound
}

// # Likes

// MemoryLikeStore keeps likes in process memory. Safe for concurrent use.
type MemoryLikeStore struct {
	mu        sync.Mutex
	byItem    map[int]map[string]struct{}
	byVisitor map[string]map[int]struct{}
}

func NewMemoryLikeStore() *MemoryLikeStore {
	return &MemoryLikeStore{
		byItem:    make(map[int]map[string]struct{}),
		byVisitor: make(map[string]map[int]struct{}),
	}
}

func (store *MemoryLikeStore) Toggle(_ context.Context, visitor string, itemID int) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	visitors := store.byItem[itemID]
	if _, liked := visitors[visitor]; liked {
		delete(visitors, visitor)
		delete(store.byVisitor[visitor], itemID)
		if len(visitors) == 0 {
			delete(store.byItem, itemID)
		}
		if len(store.byVisitor[visitor]) == 0 {
			delete(store.byVisitor, visitor)
		}
		return false, nil
	}

	if visitors == nil {
		visitors = make(map[string]struct{})
		store.byItem[itemID] = visitors
	}
	visitors[visitor] = struct{}{}

	items := store.byVisitor[visitor]
	if items == nil {
		items = make(map[int]struct{})
		store.byVisitor[visitor] = items
	}
	items[itemID] = struct{}{}

	return true, nil
}

func (store *MemoryLikeStore) LikedBy(_ context.Context, visitor string) ([]int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	ids := make([]int, 0, len(store.byVisitor[visitor]))
	for id := range store.byVisitor[visitor] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (store *MemoryLikeStore) Counts(_ context.Context, itemIDs []int) (map[int]int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	counts := make(map[int]int, len(itemIDs))
	for _, id := range itemIDs {
		if n := len(store.byItem[id]); n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}
