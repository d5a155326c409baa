// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"cmp"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// # Comparator Builders

// ByText orders records by a text field using English collation.
func ByText[R any](field func(R) string) Comparator[R] {
	collation := newCollation(language.English)
	return func(a, b R) int {
		return collation.compare(field(a), field(b))
	}
}

// Ascending orders records by an integer field, smallest first.
func Ascending[R any](field func(R) int64) Comparator[R] {
	return func(a, b R) int {
		return cmp.Compare(field(a), field(b))
	}
}

// Descending orders records by an integer field, largest first.
func Descending[R any](field func(R) int64) Comparator[R] {
	return func(a, b R) int {
		return cmp.Compare(field(b), field(a))
	}
}

// DescendingFloat orders records by a real-valued field, largest first.
func DescendingFloat[R any](field func(R) float64) Comparator[R] {
	return func(a, b R) int {
		return cmp.Compare(field(b), field(a))
	}
}

// FlagFirst puts records whose flag is set before the others. Records with
// the same flag compare equal, so a stable sort keeps their store order.
func FlagFirst[R any](flag func(R) bool) Comparator[R] {
	return func(a, b R) int {
		switch fa, fb := flag(a), flag(b); {
		case fa == fb:
			return 0
		case fa:
			return -1
		default:
			return 1
		}
	}
}

// # Collation

// collation serialises access to a collator, which keeps internal buffers.
type collation struct {
	mu       sync.Mutex
	collator *collate.Collator
}

func newCollation(tag language.Tag) *collation {
	return &collation{collator: collate.New(tag)}
}

func (c *collation) compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collator.CompareString(a, b)
}
