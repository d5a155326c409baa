// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import (
	"errors"
	"fmt"
	"slices"

	"github.com/taibuivan/traders/internal/dashboard"
	"github.com/taibuivan/traders/internal/gallery"
	"github.com/taibuivan/traders/internal/product"
)

// ErrInvalid wraps every invariant violation reported by [Set.Validate].
var ErrInvalid = errors.New("seed: invalid data")

// SharePercentTotal is what the admin category shares must add up to.
const SharePercentTotal = 100

// Validate checks every invariant and reports all violations at once.
func (set *Set) Validate() error {
	var problems []error
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	productIDs := make(map[int]struct{}, len(set.Products))
	for _, p := range set.Products {
		if _, dup := productIDs[p.ID]; dup {
			fail("duplicate product id %d", p.ID)
		}
		productIDs[p.ID] = struct{}{}

		if !slices.Contains(product.Categories, p.Category) {
			fail("product %d: unknown category %q", p.ID, p.Category)
		}
		if p.Rating < 0 || p.Rating > product.MaxRating {
			fail("product %d: rating %.1f out of range", p.ID, p.Rating)
		}
	}

	itemIDs := make(map[int]struct{}, len(set.Gallery))
	for _, item := range set.Gallery {
		if _, dup := itemIDs[item.ID]; dup {
			fail("duplicate gallery id %d", item.ID)
		}
		itemIDs[item.ID] = struct{}{}

		if !slices.Contains(gallery.Categories, item.Category) {
			fail("gallery %d: unknown category %q", item.ID, item.Category)
		}
		if item.Stats.Likes < 0 || item.Stats.Views < 0 {
			fail("gallery %d: negative stats", item.ID)
		}
	}

	share := 0
	for _, s := range set.Dashboard.Admin.Categories {
		share += s.Percent
	}
	if len(set.Dashboard.Admin.Categories) > 0 && share != SharePercentTotal {
		fail("category shares sum to %d, want %d", share, SharePercentTotal)
	}

	for _, order := range set.Dashboard.Admin.Orders {
		if !slices.Contains(dashboard.OrderStatuses, order.Status) {
			fail("order %s: unknown status %q", order.ID, order.Status)
		}
	}
	for _, invoice := range set.Dashboard.Vendor.Invoices {
		if invoice.Status != dashboard.InvoicePaid && invoice.Status != dashboard.InvoicePending {
			fail("invoice %s: unknown status %q", invoice.ID, invoice.Status)
		}
	}

	for _, testimonial := range set.Content.Testimonials {
		if testimonial.Rating < 1 || testimonial.Rating > 5 {
			fail("testimonial %q: rating %d out of range", testimonial.Name, testimonial.Rating)
		}
	}

	return errors.Join(problems...)
}
