// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/traders/internal/product"
	"github.com/taibuivan/traders/pkg/pagination"
)

type listResponse struct {
	Data []product.Product `json:"data"`
	Meta pagination.Meta   `json:"meta"`
}

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := product.NewHandler(newService(sampleProducts()))
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestHandler_ListProducts(t *testing.T) {
	recorder := serve(t, "/?category=Software&sort=price-low&limit=2")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body listResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	require.Len(t, body.Data, 2)
	assert.Equal(t, 7, body.Data[0].ID)
	assert.Equal(t, "₹49,999", body.Data[0].PriceDisplay)
	assert.Equal(t, 1, body.Data[1].ID)
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 2, Total: 3, TotalPages: 2}, body.Meta)
}

func TestHandler_ListProducts_InvalidSort(t *testing.T) {
	recorder := serve(t, "/?sort=random")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"VALIDATION_ERROR"`)
	assert.Contains(t, recorder.Body.String(), `"sort"`)
}

func TestHandler_GetProduct(t *testing.T) {
	recorder := serve(t, "/network-security-system")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id":6`)

	recorder = serve(t, "/404")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_FacetsAndOptions(t *testing.T) {
	recorder := serve(t, "/facets")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `{"category":"All","count":8}`)

	recorder = serve(t, "/options")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `{"value":"fastDelivery","label":"Fast Delivery"}`)
}
