// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package contact simulates the contact form.

A submission is validated and stripped of markup, held for a fixed
acknowledgement delay, confirmed through a notifier and answered with a
receipt. Nothing is stored.
*/
package contact

import "time"

// Field limits.
const (
	MaxNameLength    = 80
	MaxEmailLength   = 254
	MaxMessageLength = 5000
	MinMessageLength = 10
)

// Submission is the contact form payload.
type Submission struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
}

// Receipt acknowledges a submission.
type Receipt struct {
	Reference      string    `json:"reference"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	AcknowledgedAt time.Time `json:"acknowledged_at"`
}
