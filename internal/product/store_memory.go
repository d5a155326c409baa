// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"

	"github.com/taibuivan/traders/internal/platform/apperr"
)

// ErrNotFound is returned when no product matches an identifier.
var ErrNotFound = apperr.NotFound("Product")

// MemoryRepository serves a fixed product list held in memory.
type MemoryRepository struct {
	products []*Product
	byID     map[int]*Product
	bySlug   map[string]*Product
}

// NewMemoryRepository indexes products. The slice is copied; the records
// themselves are shared and must not be modified afterwards.
func NewMemoryRepository(products []*Product) *MemoryRepository {
	repository := &MemoryRepository{
		products: make([]*Product, len(products)),
		byID:     make(map[int]*Product, len(products)),
		bySlug:   make(map[string]*Product, len(products)),
	}

	copy(repository.products, products)
	for _, p := range products {
		repository.byID[p.ID] = p
		if p.Slug != "" {
			repository.bySlug[p.Slug] = p
		}
	}

	return repository
}

func (repository *MemoryRepository) All(_ context.Context) ([]*Product, error) {
	out := make([]*Product, len(repository.products))
	copy(out, repository.products)
	return out, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id int) (*Product, error) {
	if p, ok := repository.byID[id]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (repository *MemoryRepository) FindBySlug(_ context.Context, slug string) (*Product, error) {
	if p, ok := repository.bySlug[slug]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}
