// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package money models Indian Rupee prices as integer minor units (paise).

Catalog data arrives as display literals such as "₹2,49,999". This package
parses those literals into an [Amount] and formats amounts back using the
Indian digit grouping (lakh/crore), so that every canonical literal survives
a parse/format round trip unchanged.

Usage:

	price, err := money.ParseINR("₹2,49,999")
	// price.Rupees() == 249999
	// price.String() == "₹2,49,999"
*/
package money

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// # Amount

// Amount is a monetary value in paise (1 rupee = 100 paise).
type Amount int64

// Invalid is assigned to records whose literal price could not be parsed.
// It orders below every valid amount.
const Invalid Amount = math.MinInt64

// ErrMalformed is returned when a price literal does not describe a
// non-negative rupee amount.
var ErrMalformed = errors.New("money: malformed price")

const (
	paisePerRupee = 100
	rupeeSign     = "₹"
)

// FromRupees builds an [Amount] from a whole-rupee value.
func FromRupees(rupees int64) Amount {
	return Amount(rupees * paisePerRupee)
}

// Rupees returns the whole-rupee part of the amount.
func (a Amount) Rupees() int64 {
	return int64(a) / paisePerRupee
}

// Paise returns the fractional part of the amount in paise.
func (a Amount) Paise() int64 {
	return int64(a) % paisePerRupee
}

// Valid reports whether the amount came from a well-formed literal.
func (a Amount) Valid() bool {
	return a != Invalid && a >= 0
}

// String formats the amount as an INR display literal.
func (a Amount) String() string {
	return FormatINR(a)
}

// # Parsing

// ParseINR parses a rupee display literal.
//
// The rupee sign, "Rs." / "INR" prefixes, spaces and grouping commas are
// ignored. An optional fraction of one or two digits is read as paise.
func ParseINR(text string) (Amount, error) {
	cleaned := strings.TrimSpace(text)
	for _, prefix := range []string{rupeeSign, "Rs.", "Rs", "INR"} {
		cleaned = strings.TrimPrefix(cleaned, prefix)
	}
	cleaned = strings.NewReplacer(",", "", " ", "").Replace(cleaned)

	if cleaned == "" {
		return Invalid, ErrMalformed
	}

	whole, fraction, hasFraction := strings.Cut(cleaned, ".")
	if !digitsOnly(whole) {
		return Invalid, ErrMalformed
	}

	rupees, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Invalid, ErrMalformed
	}

	var paise int64
	if hasFraction {
		if len(fraction) == 0 || len(fraction) > 2 || !digitsOnly(fraction) {
			return Invalid, ErrMalformed
		}
		if len(fraction) == 1 {
			fraction += "0"
		}
		paise, _ = strconv.ParseInt(fraction, 10, 64)
	}

	if rupees > (math.MaxInt64-paise)/paisePerRupee {
		return Invalid, ErrMalformed
	}

	return Amount(rupees*paisePerRupee + paise), nil
}

// MustParseINR is like [ParseINR] but panics on malformed input.
// It is meant for literals in tests and fixtures.
func MustParseINR(text string) Amount {
	amount, err := ParseINR(text)
	if err != nil {
		panic(err.Error() + ": " + text)
	}
	return amount
}

// # Formatting

// FormatINR renders an amount with the rupee sign and Indian digit grouping:
// the last three digits form one group and the remaining digits are grouped
// in pairs ("₹12,34,567"). Paise are appended only when non-zero.
func FormatINR(a Amount) string {
	if !a.Valid() {
		return ""
	}

	formatted := rupeeSign + groupIndian(strconv.FormatInt(a.Rupees(), 10))
	if paise := a.Paise(); paise != 0 {
		formatted += "." + twoDigits(paise)
	}
	return formatted
}

// groupIndian inserts commas into a string of decimal digits.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var builder strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		builder.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(head[i : i+2])
	}
	builder.WriteByte(',')
	builder.WriteString(tail)

	return builder.String()
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
