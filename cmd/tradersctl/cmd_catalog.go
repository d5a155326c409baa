// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/taibuivan/traders/internal/catalog"
	"github.com/taibuivan/traders/internal/gallery"
	"github.com/taibuivan/traders/internal/product"
	"github.com/taibuivan/traders/internal/seed"
	"github.com/taibuivan/traders/pkg/pagination"
)

// queryFlags are shared by the products and gallery commands.
type queryFlags struct {
	params  catalog.Params
	sort    string
	page    pagination.Params
	asJSON  bool
	options bool
}

func (flags *queryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flags.params.Search, "q", "", "free-text search")
	cmd.Flags().StringVar(&flags.params.Category, "category", catalog.AllCategories, "category to show")
	cmd.Flags().StringVar(&flags.params.Filter, "filter", "", "quick filter")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort order (default depends on the collection)")
	cmd.Flags().IntVar(&flags.page.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&flags.page.Limit, "limit", pagination.DefaultLimit, "items per page")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().BoolVar(&flags.options, "options", false, "list categories, filters and sorts, then exit")
}

func (flags *queryFlags) query() catalog.Params {
	params := flags.params
	params.Sort = catalog.SortKey(flags.sort)
	return params
}

func newProductsCommand(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products from the embedded catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger(cmd)
			data, err := seed.Load(log)
			if err != nil {
				return err
			}

			service := product.NewService(product.NewMemoryRepository(data.Products), log)
			if flags.options {
				return printOptions(cmd.OutOrStdout(), service.Options())
			}

			listing, err := service.List(cmd.Context(), flags.query(), flags.page)
			if err != nil {
				return describe(err)
			}
			if flags.asJSON {
				return printJSON(cmd.OutOrStdout(), listing)
			}

			rows := make([][]string, 0, len(listing.Items))
			for _, p := range listing.Items {
				rows = append(rows, []string{
					strconv.Itoa(p.ID), p.Name, p.Category, p.PriceDisplay,
					strconv.FormatFloat(p.Rating, 'f', 1, 64), stockLabel(p.InStock), p.Delivery, p.Vendor,
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "CATEGORY", "PRICE", "RATING", "STOCK", "DELIVERY", "VENDOR"}, rows)

			return printMeta(cmd.OutOrStdout(), listing.Meta, listing.Params)
		},
	}

	flags.bind(cmd)
	return cmd
}

func newGalleryCommand(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List gallery items from the embedded data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger(cmd)
			data, err := seed.Load(log)
			if err != nil {
				return err
			}

			service := gallery.NewService(gallery.NewMemoryRepository(data.Gallery), gallery.NewMemoryLikeStore(), log)
			if flags.options {
				return printOptions(cmd.OutOrStdout(), service.Options())
			}

			listing, err := service.List(cmd.Context(), "", flags.query(), flags.page)
			if err != nil {
				return describe(err)
			}
			if flags.asJSON {
				return printJSON(cmd.OutOrStdout(), listing)
			}

			rows := make([][]string, 0, len(listing.Items))
			for _, item := range listing.Items {
				rows = append(rows, []string{
					strconv.Itoa(item.ID), item.Title, item.Category, strconv.FormatBool(item.Featured),
					strconv.Itoa(item.Stats.Likes), strconv.Itoa(item.Stats.Views), strings.Join(item.Tags, ", "),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "TITLE", "CATEGORY", "FEATURED", "LIKES", "VIEWS", "TAGS"}, rows)

			return printMeta(cmd.OutOrStdout(), listing.Meta, listing.Params)
		},
	}

	flags.bind(cmd)
	return cmd
}

func printTable(out io.Writer, headers []string, rows [][]string) {
	rendered := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(out, rendered.Render())
}

func stockLabel(inStock bool) string {
	if inStock {
		return "in stock"
	}
	return "out"
}

func printMeta(out io.Writer, meta pagination.Meta, params catalog.Params) error {
	_, err := fmt.Fprintf(out, "\npage %d/%d, %d matching (category=%s filter=%s sort=%s)\n",
		meta.Page, meta.TotalPages, meta.Total, params.Category, orNone(params.Filter), orNone(string(params.Sort)))
	return err
}

func printOptions(out io.Writer, options catalog.Options) error {
	fmt.Fprintln(out, "categories:", strings.Join(options.Categories, ", "))
	for _, group := range []struct {
		title   string
		options []catalog.Option
	}{{"filters", options.QuickFilters}, {"sorts", options.Sorts}} {
		fmt.Fprintf(out, "%s:\n", group.title)
		for _, option := range group.options {
			fmt.Fprintf(out, "  %-14s %s\n", option.Value, option.Label)
		}
	}
	return nil
}

func printJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}
