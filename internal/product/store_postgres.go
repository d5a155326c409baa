// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/traders/internal/platform/database/schema"
	"github.com/taibuivan/traders/internal/platform/dberr"
	"github.com/taibuivan/traders/pkg/money"
)

// PostgresRepository reads products from the catalog.product table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectProduct = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.CatalogProduct.Columns(), ", "), schema.CatalogProduct.Table)

func (repository *PostgresRepository) All(ctx context.Context) ([]*Product, error) {
	query := fmt.Sprintf(`%s ORDER BY %s ASC, %s ASC`,
		selectProduct, schema.CatalogProduct.Position, schema.CatalogProduct.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_product")
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_products")
	}

	return products, nil
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int) (*Product, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, selectProduct, schema.CatalogProduct.ID)

	p, err := scanProduct(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "get_product_by_id", ErrNotFound)
	}
	return p, nil
}

func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Product, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, selectProduct, schema.CatalogProduct.Slug)

	p, err := scanProduct(repository.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "get_product_by_slug", ErrNotFound)
	}
	return p, nil
}

// Replace swaps the table contents for products inside one transaction.
// Slice order becomes store order.
func (repository *PostgresRepository) Replace(ctx context.Context, products []*Product) error {
	table := schema.CatalogProduct

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (%s)`,
		table.Table, strings.Join(table.Columns(), ", "), table.Position, placeholders(len(table.Columns())+1))

	return pgx.BeginFunc(ctx, repository.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table.Table); err != nil {
			return dberr.Wrap(err, "clear_products")
		}

		batch := &pgx.Batch{}
		for position, p := range products {
			batch.Queue(insert,
				p.ID, p.Slug, p.Name, p.Category, int64(p.Price), p.PriceDisplay, p.Vendor,
				p.Rating, p.InStock, p.Featured, p.Delivery, p.Warranty, p.Image,
				p.Description, p.Tags, position,
			)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return dberr.Wrap(err, "insert_products")
		}
		return nil
	})
}

func scanProduct(row pgx.Row) (*Product, error) {
	p := &Product{}
	var paise int64

	err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Category, &paise, &p.PriceDisplay, &p.Vendor,
		&p.Rating, &p.InStock, &p.Featured, &p.Delivery, &p.Warranty, &p.Image,
		&p.Description, &p.Tags,
	)
	if err != nil {
		return nil, err
	}

	p.Price = money.Amount(paise)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

// placeholders returns "$1, $2, ..., $n".
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}
