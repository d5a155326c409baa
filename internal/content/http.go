// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/traders/internal/platform/respond"
)

// Handler implements the HTTP layer for the marketing pages.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with one endpoint per page.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/home", func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, handler.service.Home())
	})
	router.Get("/about", func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, handler.service.About())
	})
	router.Get("/contact", func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, handler.service.Contact())
	})

	// GET /api/v1/content/faq?q=refund
	router.Get("/faq", func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, handler.service.FAQs(request.URL.Query().Get("q")))
	})

	return router
}
