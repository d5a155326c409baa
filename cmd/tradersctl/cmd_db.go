// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/traders/internal/gallery"
	"github.com/taibuivan/traders/internal/platform/migration"
	"github.com/taibuivan/traders/internal/platform/postgres"
	"github.com/taibuivan/traders/internal/product"
	"github.com/taibuivan/traders/internal/seed"
)

func newDBCommand(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		databaseURL   string
		migrationPath string
	)

	db := &cobra.Command{
		Use:   "db",
		Short: "Manage the PostgreSQL catalog store",
	}
	db.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL DSN")
	db.PersistentFlags().StringVar(&migrationPath, "migrations", envOr("MIGRATION_PATH", "./data/migrations"), "migrations directory")

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Migrate the schema and replace the catalog tables with the embedded seed set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if databaseURL == "" {
				return fmt.Errorf("no database: pass --database-url or set DATABASE_URL")
			}

			log := logger(cmd)
			data, err := seed.Load(log)
			if err != nil {
				return err
			}

			if err := migration.RunUp(databaseURL, migrationPath, log); err != nil {
				return err
			}

			pool, err := postgres.NewPool(cmd.Context(), databaseURL, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := product.NewPostgresRepository(pool).Replace(cmd.Context(), data.Products); err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
			if err := gallery.NewPostgresRepository(pool).Replace(cmd.Context(), data.Gallery); err != nil {
				return fmt.Errorf("seed gallery: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products and %d gallery items\n", len(data.Products), len(data.Gallery))
			return err
		},
	}

	db.AddCommand(seedCmd)
	return db
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
