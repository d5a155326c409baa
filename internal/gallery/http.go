// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/traders/internal/catalog"
	"github.com/taibuivan/traders/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/traders/internal/platform/request"
	"github.com/taibuivan/traders/internal/platform/respond"
	"github.com/taibuivan/traders/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the gallery.
//
// The visitor is read from the request context; mount the router behind
// middleware.Visitor.
type Handler struct {
	service *Service
}

// NewHandler constructs a new gallery [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the gallery endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listItems)
	router.Get("/facets", handler.facets)
	router.Get("/options", handler.options)
	router.Get("/likes", handler.likedItems)
	router.Get("/{id}", handler.getItem)
	router.Post("/{id}/like", handler.toggleLike)

	return router
}

/*
GET /api/v1/gallery.

Request:
  - q: string (matches title, description, tags)
  - category: string (All, Office, Products, Team, Facility, Events, Tech, Development)
  - filter: string (featured, most-popular, recent)
  - sort: string (name, featured, popular, recent)
  - view: string (grid, masonry)
  - page, limit: int

Response:
  - 200: []View: Paginated derived view with the caller's likes
  - 400: ErrValidation: Unknown category, filter or sort
*/
func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	listing, err := handler.service.List(ctx, ctxutil.GetVisitor(ctx), catalog.FromRequest(request), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listing.Items, listing.Meta)
}

// GET /api/v1/gallery/{id}.
func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctx := request.Context()
	view, err := handler.service.Get(ctx, ctxutil.GetVisitor(ctx), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

/*
POST /api/v1/gallery/{id}/like.

Description: Toggles the caller's like on an item. The caller is the
visitor named by the X-Visitor-ID header.

Response:
  - 200: LikeState
  - 404: ErrNotFound
*/
func (handler *Handler) toggleLike(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctx := request.Context()
	state, err := handler.service.ToggleLike(ctx, ctxutil.GetVisitor(ctx), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, state)
}

// GET /api/v1/gallery/likes.
func (handler *Handler) likedItems(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	ids, err := handler.service.LikedBy(ctx, ctxutil.GetVisitor(ctx))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ids)
}

// GET /api/v1/gallery/facets.
func (handler *Handler) facets(writer http.ResponseWriter, request *http.Request) {
	facets, err := handler.service.Facets(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, facets)
}

// GET /api/v1/gallery/options.
func (handler *Handler) options(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Options())
}
