// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/traders/internal/catalog"
	requestutil "github.com/taibuivan/traders/internal/platform/request"
	"github.com/taibuivan/traders/internal/platform/respond"
	"github.com/taibuivan/traders/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the product catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a new product [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the product endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProducts)
	router.Get("/facets", handler.facets)
	router.Get("/options", handler.options)
	router.Get("/{identifier}", handler.getProduct)

	return router
}

/*
GET /api/v1/products.

Request:
  - q: string (matches name, vendor, description, tags)
  - category: string (All, Software, Hardware, Services, Furniture)
  - filter: string (featured, inStock, fastDelivery)
  - sort: string (name, price-low, price-high, rating, featured)
  - view: string (grid, list)
  - page, limit: int

Response:
  - 200: []Product: Paginated derived view
  - 400: ErrValidation: Unknown category, filter or sort
*/
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	listing, err := handler.service.List(request.Context(), catalog.FromRequest(request), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listing.Items, listing.Meta)
}

/*
GET /api/v1/products/{identifier}.

Request:
  - identifier: string (numeric ID or slug)

Response:
  - 200: Product
  - 404: ErrNotFound
*/
func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	p, err := handler.service.Get(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, p)
}

// GET /api/v1/products/facets.
func (handler *Handler) facets(writer http.ResponseWriter, request *http.Request) {
	facets, err := handler.service.Facets(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, facets)
}

// GET /api/v1/products/options.
func (handler *Handler) options(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Options())
}
