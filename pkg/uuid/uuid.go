// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the time-ordered identifiers used for contact
receipts and other references handed to clients.

Version 7 values sort by creation time, so references issued later compare
greater, which keeps log searches and support lookups simple.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}
	return id.String()
}

// canonicalLength is the length of the hyphenated 8-4-4-4-12 form.
const canonicalLength = 36

// Valid reports whether s is a UUID of any version in the hyphenated
// 8-4-4-4-12 form. URN and braced forms are rejected.
func Valid(s string) bool {
	return len(s) == canonicalLength && uuid.Validate(s) == nil
}
