// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed holds the literal Traders data set.

The data ships inside the binary as YAML and is decoded once at startup.
[Load] checks the cross-record invariants (unique IDs, known categories,
bounded ratings, category shares summing to 100) and fails loudly when
they do not hold. A price literal that cannot be parsed does not fail the
load: the record keeps its display text and gets [money.Invalid].
*/
package seed

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/traders/internal/content"
	"github.com/taibuivan/traders/internal/dashboard"
	"github.com/taibuivan/traders/internal/gallery"
	"github.com/taibuivan/traders/internal/product"
	"github.com/taibuivan/traders/pkg/money"
	"github.com/taibuivan/traders/pkg/slug"
)

//go:embed data/*.yaml
var embedded embed.FS

// # Files

const (
	FileProducts  = "data/products.yaml"
	FileGallery   = "data/gallery.yaml"
	FileDashboard = "data/dashboard.yaml"
	FileContent   = "data/content.yaml"
)

// Set is the decoded data set.
type Set struct {
	Products  []*product.Product
	Gallery   []*gallery.Item
	Dashboard dashboard.Data
	Content   content.Data
}

// Load decodes the embedded data set.
func Load(logger *slog.Logger) (*Set, error) {
	return LoadFS(embedded, logger)
}

// LoadFS decodes a data set laid out like the embedded one.
func LoadFS(fsys fs.FS, logger *slog.Logger) (*Set, error) {
	var (
		productsFile  productsDocument
		galleryFile   galleryDocument
		dashboardData dashboard.Data
		contentData   content.Data
	)

	for name, target := range map[string]any{
		FileProducts:  &productsFile,
		FileGallery:   &galleryFile,
		FileDashboard: &dashboardData,
		FileContent:   &contentData,
	} {
		if err := decode(fsys, name, target); err != nil {
			return nil, err
		}
	}

	set := &Set{
		Products:  productsFile.build(logger),
		Gallery:   galleryFile.build(),
		Dashboard: dashboardData,
		Content:   contentData,
	}
	parseDashboardAmounts(&set.Dashboard, logger)

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

func decode(fsys fs.FS, name string, target any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("seed: decode %s: %w", name, err)
	}
	return nil
}

// # Records

type productsDocument struct {
	Products []struct {
		ID          int      `yaml:"id"`
		Name        string   `yaml:"name"`
		Category    string   `yaml:"category"`
		Price       string   `yaml:"price"`
		Vendor      string   `yaml:"vendor"`
		Rating      float64  `yaml:"rating"`
		InStock     bool     `yaml:"in_stock"`
		Featured    bool     `yaml:"featured"`
		Delivery    string   `yaml:"delivery"`
		Warranty    string   `yaml:"warranty"`
		Image       string   `yaml:"image"`
		Description string   `yaml:"description"`
		Tags        []string `yaml:"tags"`
	} `yaml:"products"`
}

func (document productsDocument) build(logger *slog.Logger) []*product.Product {
	taken := make(map[string]struct{}, len(document.Products))
	products := make([]*product.Product, 0, len(document.Products))

	for _, record := range document.Products {
		products = append(products, &product.Product{
			ID:           record.ID,
			Slug:         slug.Unique(record.Name, taken),
			Name:         record.Name,
			Category:     record.Category,
			Price:        parsePrice(logger, "product", record.ID, record.Price),
			PriceDisplay: record.Price,
			Vendor:       record.Vendor,
			Rating:       record.Rating,
			InStock:      record.InStock,
			Featured:     record.Featured,
			Delivery:     record.Delivery,
			Warranty:     record.Warranty,
			Image:        record.Image,
			Description:  record.Description,
			Tags:         nonNil(record.Tags),
		})
	}

	return products
}

type galleryDocument struct {
	Items []struct {
		ID          int      `yaml:"id"`
		Title       string   `yaml:"title"`
		Category    string   `yaml:"category"`
		Description string   `yaml:"description"`
		Tags        []string `yaml:"tags"`
		Featured    bool     `yaml:"featured"`
		Stats       struct {
			Likes int `yaml:"likes"`
			Views int `yaml:"views"`
		} `yaml:"stats"`
	} `yaml:"items"`
}

func (document galleryDocument) build() []*gallery.Item {
	items := make([]*gallery.Item, 0, len(document.Items))
	for _, record := range document.Items {
		items = append(items, &gallery.Item{
			ID:          record.ID,
			Title:       record.Title,
			Category:    record.Category,
			Description: record.Description,
			Tags:        nonNil(record.Tags),
			Featured:    record.Featured,
			Stats:       gallery.Stats{Likes: record.Stats.Likes, Views: record.Stats.Views},
		})
	}
	return items
}

func parseDashboardAmounts(data *dashboard.Data, logger *slog.Logger) {
	for i := range data.Admin.Orders {
		order := &data.Admin.Orders[i]
		order.Amount = parsePrice(logger, "order", order.ID, order.AmountDisplay)
	}
	for i := range data.Vendor.Inventory {
		item := &data.Vendor.Inventory[i]
		item.Price = parsePrice(logger, "inventory", item.ID, item.PriceDisplay)
	}
	for i := range data.Vendor.Invoices {
		invoice := &data.Vendor.Invoices[i]
		invoice.Amount = parsePrice(logger, "invoice", invoice.ID, invoice.AmountDisplay)
	}
}

func parsePrice(logger *slog.Logger, kind string, id any, literal string) money.Amount {
	amount, err := money.ParseINR(literal)
	if err != nil {
		logger.Warn("seed_price_malformed",
			slog.String("kind", kind),
			slog.Any("id", id),
			slog.String("price", literal),
			slog.Any("error", err),
		)
		return money.Invalid
	}
	return amount
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
