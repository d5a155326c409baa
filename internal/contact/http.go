// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/traders/internal/platform/request"
	"github.com/taibuivan/traders/internal/platform/respond"
)

// Handler implements the HTTP layer for the contact form.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the contact endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.submit)
	return router
}

/*
POST /api/v1/contact.

Request:
  - Body: Submission

Response:
  - 202: Receipt
  - 400: ErrValidation: Missing or malformed fields
  - 408: ErrRequestTimeout: Client went away during acknowledgement
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var submission Submission
	if err := requestutil.DecodeJSON(writer, request, &submission); err != nil {
		respond.Error(writer, request, err)
		return
	}

	receipt, err := handler.service.Submit(request.Context(), submission)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Accepted(writer, receipt)
}
