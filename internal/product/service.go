// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/taibuivan/traders/internal/catalog"
	"github.com/taibuivan/traders/internal/platform/ctxutil"
	"github.com/taibuivan/traders/pkg/pagination"
)

// # Service Layer

// Service answers catalog queries over a [Repository].
type Service struct {
	repo   Repository
	engine *catalog.Engine[*Product]
	logger *slog.Logger
}

// NewService constructs a new [Service] with the product engine.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		engine: NewEngine(),
		logger: logger,
	}
}

// Listing is one page of a derived product view.
type Listing struct {
	Items  []*Product      `json:"items"`
	Meta   pagination.Meta `json:"meta"`
	Params catalog.Params  `json:"params"`
}

/*
List derives the product view for params and cuts out one page.

Parameters are normalised first, so "software" selects the Software
category and an absent sort falls back to featured-first. Unknown values
are rejected with a validation error; an empty result is not an error.
*/
func (service *Service) List(ctx context.Context, params catalog.Params, page pagination.Params) (*Listing, error) {
	params = service.engine.Normalize(params)
	if err := service.engine.Validate(params); err != nil {
		return nil, err
	}

	products, err := service.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	view := service.engine.Derive(products, params)
	items, meta := catalog.Paginate(view, page)

	service.logger.DebugContext(ctx, "product_view_derived",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.String("q", params.Search),
		slog.String("category", params.Category),
		slog.String("filter", params.Filter),
		slog.String("sort", string(params.Sort)),
		slog.Int("matched", len(view)),
	)

	return &Listing{Items: items, Meta: meta, Params: params}, nil
}

// Get resolves a product by numeric ID or by slug.
func (service *Service) Get(ctx context.Context, identifier string) (*Product, error) {
	if id, err := strconv.Atoi(identifier); err == nil {
		return service.repo.FindByID(ctx, id)
	}
	return service.repo.FindBySlug(ctx, identifier)
}

// Facets counts products per category.
func (service *Service) Facets(ctx context.Context) ([]catalog.Facet, error) {
	products, err := service.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return service.engine.Facets(products), nil
}

// Options describes the categories, quick filters and sorts of the catalog.
func (service *Service) Options() catalog.Options {
	return service.engine.Options()
}
