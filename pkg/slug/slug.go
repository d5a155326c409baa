// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives ASCII URL slugs from product names, e.g.
// "Enterprise Software License" becomes "enterprise-software-license".
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlug     = regexp.MustCompile(`[^a-z0-9]+`)
	stripAccent = transform.Chain(norm.NFD, transform.RemoveFunc(isNonSpacingMark))
)

// From lowercases s, strips accents and joins the remaining ASCII letter
// and digit runs with single hyphens. "&" is spelled out as "and".
func From(s string) string {
	plain, _, err := transform.String(stripAccent, s)
	if err != nil {
		plain = s
	}

	plain = strings.ReplaceAll(strings.ToLower(plain), "&", " and ")
	return strings.Trim(nonSlug.ReplaceAllString(plain, "-"), "-")
}

// Unique returns From(s), suffixed with "-2", "-3", ... until it is not in
// taken. The chosen slug is added to taken.
func Unique(s string, taken map[string]struct{}) string {
	base := From(s)
	candidate := base
	for n := 2; ; n++ {
		if _, exists := taken[candidate]; !exists {
			break
		}
		candidate = base + "-" + strconv.Itoa(n)
	}

	taken[candidate] = struct{}{}
	return candidate
}

func isNonSpacingMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
