// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"log/slog"

	"github.com/taibuivan/traders/internal/catalog"
	"github.com/taibuivan/traders/internal/platform/apperr"
	"github.com/taibuivan/traders/internal/platform/ctxutil"
	"github.com/taibuivan/traders/pkg/pagination"
)

// # Service Layer

// Service answers gallery queries and records visitor likes.
type Service struct {
	repo   Repository
	likes  LikeStore
	engine *catalog.Engine[*Item]
	logger *slog.Logger
}

// NewService constructs a new gallery [Service].
func NewService(repo Repository, likes LikeStore, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		likes:  likes,
		engine: NewEngine(),
		logger: logger,
	}
}

// Listing is one page of a derived gallery view.
type Listing struct {
	Items  []*View         `json:"items"`
	Meta   pagination.Meta `json:"meta"`
	Params catalog.Params  `json:"params"`
}

// LikeState is the outcome of a like toggle.
type LikeState struct {
	ItemID int  `json:"item_id"`
	Liked  bool `json:"liked"`
	Likes  int  `json:"likes"`
}

/*
List derives the gallery view for params, cuts out one page and decorates
it with the like state of visitor. An empty visitor sees totals only.
*/
func (service *Service) List(ctx context.Context, visitor string, params catalog.Params, page pagination.Params) (*Listing, error) {
	params = service.engine.Normalize(params)
	if err := service.engine.Validate(params); err != nil {
		return nil, err
	}

	items, err := service.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	view := service.engine.Derive(items, params)
	pageItems, meta := catalog.Paginate(view, page)

	decorated, err := service.decorate(ctx, visitor, pageItems)
	if err != nil {
		return nil, err
	}

	service.logger.DebugContext(ctx, "gallery_view_derived",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.String("category", params.Category),
		slog.String("filter", params.Filter),
		slog.Int("matched", len(view)),
	)

	return &Listing{Items: decorated, Meta: meta, Params: params}, nil
}

// Get returns one item as seen by visitor.
func (service *Service) Get(ctx context.Context, visitor string, id int) (*View, error) {
	item, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := service.decorate(ctx, visitor, []*Item{item})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// ToggleLike flips the like of visitor on item id.
func (service *Service) ToggleLike(ctx context.Context, visitor string, id int) (*LikeState, error) {
	if visitor == "" {
		return nil, apperr.ValidationError("Visitor identifier is required")
	}

	item, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	liked, err := service.likes.Toggle(ctx, visitor, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	counts, err := service.likes.Counts(ctx, []int{id})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.InfoContext(ctx, "gallery_like_toggled",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.Int("item_id", id),
		slog.Bool("liked", liked),
	)

	return &LikeState{ItemID: id, Liked: liked, Likes: item.Stats.Likes + counts[id]}, nil
}

// LikedBy lists the item IDs visitor liked, ascending.
func (service *Service) LikedBy(ctx context.Context, visitor string) ([]int, error) {
	if visitor == "" {
		return []int{}, nil
	}

	ids, err := service.likes.LikedBy(ctx, visitor)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return ids, nil
}

// Facets counts gallery items per category.
func (service *Service) Facets(ctx context.Context) ([]catalog.Facet, error) {
	items, err := service.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return service.engine.Facets(items), nil
}

// Options describes the categories, quick filters and sorts of the gallery.
func (service *Service) Options() catalog.Options {
	return service.engine.Options()
}

func (service *Service) decorate(ctx context.Context, visitor string, items []*Item) ([]*View, error) {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	counts, err := service.likes.Counts(ctx, ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	liked := make(map[int]bool)
	if visitor != "" {
		likedIDs, err := service.likes.LikedBy(ctx, visitor)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	views := make([]*View, len(items))
	for i, item := range items {
		views[i] = &View{
			Item:  item,
			Stats: Stats{Likes: item.Stats.Likes + counts[item.ID], Views: item.Stats.Views},
			Liked: liked[item.ID],
		}
	}
	return views, nil
}
