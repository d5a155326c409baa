// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/traders/internal/platform/apperr"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint clash.
const uniqueViolation = "23505"

// ErrNotFound is returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap classifies a database error into an [apperr.AppError].
//
// Missing rows become [ErrNotFound], unique violations become CONFLICT and
// everything else is an internal error annotated with action.
func Wrap(err error, action string) error {
	return WrapNotFound(err, action, ErrNotFound)
}

// WrapNotFound behaves like [Wrap] but reports missing rows as notFound.
func WrapNotFound(err error, action string, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == uniqueViolation {
		return apperr.Conflict("A record with the same identifier already exists")
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
