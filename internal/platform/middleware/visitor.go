// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/taibuivan/traders/internal/platform/constants"
	"github.com/taibuivan/traders/internal/platform/ctxutil"
	"github.com/taibuivan/traders/pkg/uuid"
)

// Visitor identifies anonymous gallery visitors.
//
// A hyphenated UUID in X-Visitor-ID is kept; anything else is replaced by
// a fresh ID. The ID is echoed in the response so clients can persist it.
func Visitor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			visitorID := request.Header.Get(constants.HeaderXVisitorID)

			if !uuid.Valid(visitorID) {
				visitorID = uuid.New()
			}

			writer.Header().Set(constants.HeaderXVisitorID, visitorID)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithVisitor(request.Context(), visitorID)))
		})
	}
}
