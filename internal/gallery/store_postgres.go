// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/traders/internal/platform/database/schema"
	"github.com/taibuivan/traders/internal/platform/dberr"
)

// PostgresRepository reads gallery items from the catalog.galleryitem table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectItem = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.CatalogGalleryItem.Columns(), ", "), schema.CatalogGalleryItem.Table)

func (repository *PostgresRepository) All(ctx context.Context) ([]*Item, error) {
	query := fmt.Sprintf(`%s ORDER BY %s ASC, %s ASC`,
		selectItem, schema.CatalogGalleryItem.Position, schema.CatalogGalleryItem.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_gallery_items")
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Item, error) {
		return scanItem(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_gallery_item")
	}

	return items, nil
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int) (*Item, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, selectItem, schema.CatalogGalleryItem.ID)

	item, err := scanItem(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "get_gallery_item", ErrNotFound)
	}
	return item, nil
}

// Replace swaps the table contents for items inside one transaction.
func (repository *PostgresRepository) Replace(ctx context.Context, items []*Item) error {
	table := schema.CatalogGalleryItem

	rows := make([][]any, len(items))
	for position, item := range items {
		rows[position] = []any{
			item.ID, item.Title, item.Category, item.Description, item.Tags,
			item.Featured, item.Stats.Likes, item.Stats.Views, position,
		}
	}

	columns := append(table.Columns(), table.Position)
	identifier := pgx.Identifier(strings.Split(table.Table, "."))

	return pgx.BeginFunc(ctx, repository.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table.Table); err != nil {
			return dberr.Wrap(err, "clear_gallery_items")
		}
		if _, err := tx.CopyFrom(ctx, identifier, columns, pgx.CopyFromRows(rows)); err != nil {
			return dberr.Wrap(err, "copy_gallery_items")
		}
		return nil
	})
}

func scanItem(row pgx.Row) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID, &item.Title, &item.Category, &item.Description, &item.Tags,
		&item.Featured, &item.Stats.Likes, &item.Stats.Views,
	)
	if err != nil {
		return nil, err
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}
	return item, nil
}
