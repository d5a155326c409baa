// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/traders/internal/platform/middleware"
	requestutil "github.com/taibuivan/traders/internal/platform/request"
	"github.com/taibuivan/traders/internal/platform/respond"
	"github.com/taibuivan/traders/internal/platform/sec"
	"github.com/taibuivan/traders/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for the dashboards.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the dashboard endpoints.
//
// The router expects [middleware.Authenticate] to run upstream.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/admin", handler.admin)
		r.Get("/admin/orders", handler.orders)
	})

	router.With(middleware.RequireRole(sec.RoleVendor)).Get("/vendor", handler.vendor)

	return router
}

/*
GET /api/v1/dashboard/admin.

Response:
  - 200: Admin: Stats, revenue series, category share and recent orders
  - 401: ErrUnauthorized
  - 403: ErrForbidden: Role below admin
*/
func (handler *Handler) admin(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Admin())
}

/*
GET /api/v1/dashboard/admin/orders.

Request:
  - status: string (comma-separated: Completed, Processing, Pending)

Response:
  - 200: []Order
  - 400: ErrValidation: Unknown status
*/
func (handler *Handler) orders(writer http.ResponseWriter, request *http.Request) {
	orders, err := handler.service.Orders(query.List(request.URL.Query().Get("status"))...)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, orders)
}

/*
GET /api/v1/dashboard/vendor.

Response:
  - 200: Vendor: Stats, inventory, invoices and outstanding total, labelled with the token subject
  - 403: ErrForbidden: Role below vendor
*/
func (handler *Handler) vendor(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, handler.service.VendorFor(claims.Subject, claims.Name))
}
