// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/traders/internal/catalog"
	"github.com/taibuivan/traders/internal/platform/apperr"
	"github.com/taibuivan/traders/internal/product"
	"github.com/taibuivan/traders/pkg/pagination"
)

func newService(products []*product.Product) *product.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return product.NewService(product.NewMemoryRepository(products), logger)
}

/*
TestService_List runs the catalog scenarios against the product data set.
*/
func TestService_List(t *testing.T) {
	service := newService(sampleProducts())
	page := pagination.Params{Page: 1, Limit: pagination.MaxLimit}

	tests := []struct {
		name   string
		params catalog.Params
		want   []int
	}{
		{"defaults put featured first", catalog.Params{}, []int{1, 3, 5, 7, 2, 4, 6, 8}},
		{"search security", catalog.Params{Search: "security"}, []int{6}},
		{"search covers vendor", catalog.Params{Search: "TECH"}, []int{1, 7}},
		{"lowercase category", catalog.Params{Category: "hardware", Sort: catalog.SortName}, []int{2, 6, 8}},
		{"in stock excludes furniture set", catalog.Params{Filter: "inStock", Sort: catalog.SortPriceLow}, []int{7, 1, 8, 3, 5, 2, 6}},
		{"fast delivery", catalog.Params{Filter: "fastDelivery"}, []int{1, 5, 7}},
		{"all filter means none", catalog.Params{Filter: "all", Category: "Furniture"}, []int{4}},
		{"price high", catalog.Params{Sort: catalog.SortPriceHigh}, []int{6, 2, 5, 3, 8, 1, 4, 7}},
		{"rating keeps store order for ties", catalog.Params{Sort: catalog.SortRating}, []int{3, 6, 1, 7, 5, 2, 4, 8}},
		{"name", catalog.Params{Sort: catalog.SortName}, []int{3, 7, 1, 4, 2, 5, 6, 8}},
		{"no results", catalog.Params{Search: "submarine"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := service.List(context.Background(), tt.params, page)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, productIDs(listing.Items)); diff != "" {
				t.Errorf("List() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want), listing.Meta.Total)
		})
	}
}

func TestService_List_NormalizesParams(t *testing.T) {
	service := newService(sampleProducts())

	listing, err := service.List(context.Background(), catalog.Params{Search: " cloud ", Category: "software"}, pagination.Default())
	require.NoError(t, err)

	assert.Equal(t, catalog.Params{Search: "cloud", Category: "Software", Sort: catalog.SortFeatured}, listing.Params)
	assert.Equal(t, []int{7}, productIDs(listing.Items))
}

func TestService_List_Pagination(t *testing.T) {
	service := newService(sampleProducts())

	listing, err := service.List(context.Background(), catalog.Params{Sort: catalog.SortPriceLow}, pagination.Params{Page: 2, Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, []int{8, 3, 5}, productIDs(listing.Items))
	assert.Equal(t, pagination.Meta{Page: 2, Limit: 3, Total: 8, TotalPages: 3}, listing.Meta)
}

func TestService_List_RejectsUnknownValues(t *testing.T) {
	service := newService(sampleProducts())

	_, err := service.List(context.Background(), catalog.Params{Sort: "cheapest"}, pagination.Default())
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

	_, err = service.List(context.Background(), catalog.Params{Category: "Toys"}, pagination.Default())
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

func TestService_List_EmptyStore(t *testing.T) {
	service := newService(nil)

	listing, err := service.List(context.Background(), catalog.Params{}, pagination.Default())
	require.NoError(t, err)
	assert.NotNil(t, listing.Items)
	assert.Empty(t, listing.Items)
}

func TestService_Get(t *testing.T) {
	service := newService(sampleProducts())

	byID, err := service.Get(context.Background(), "6")
	require.NoError(t, err)
	assert.Equal(t, "Network Security System", byID.Name)

	bySlug, err := service.Get(context.Background(), "cloud-storage-solution")
	require.NoError(t, err)
	assert.Equal(t, 7, bySlug.ID)

	_, err = service.Get(context.Background(), "99")
	assert.True(t, errors.Is(err, product.ErrNotFound))

	_, err = service.Get(context.Background(), "no-such-product")
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}

func TestService_FacetsAndOptions(t *testing.T) {
	service := newService(sampleProducts())

	facets, err := service.Facets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.Facet{
		{Category: "All", Count: 8},
		{Category: "Software", Count: 3},
		{Category: "Hardware", Count: 3},
		{Category: "Services", Count: 1},
		{Category: "Furniture", Count: 1},
	}, facets)

	options := service.Options()
	assert.Equal(t, []string{"All", "Software", "Hardware", "Services", "Furniture"}, options.Categories)
	assert.Equal(t, catalog.SortFeatured, options.Defaults.Sort)
}

func TestMemoryRepository_DoesNotExposeStore(t *testing.T) {
	repo := product.NewMemoryRepository(sampleProducts())

	first, err := repo.All(context.Background())
	require.NoError(t, err)
	first[0], first[1] = first[1], first[0]

	second, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, second[0].ID)
}
