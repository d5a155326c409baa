// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command tradersctl runs the catalog engine against the embedded seed data
// and covers the operator chores of the API: minting dashboard tokens and
// loading the seed set into PostgreSQL.
//
//	tradersctl products --category Software --sort price-low
//	tradersctl gallery --filter most-popular --sort popular
//	tradersctl price "₹2,49,999"
//	tradersctl token --role admin --subject ops@tradersindia.com
//	tradersctl db seed
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCommand assembles the command tree. Every call returns a fresh
// tree so tests can run commands in isolation.
func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "tradersctl",
		Short:         "Query the Traders catalog and manage its data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log seed and database events to stderr")

	logger := func(cmd *cobra.Command) *slog.Logger {
		if !verbose {
			return slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	root.AddCommand(
		newProductsCommand(logger),
		newGalleryCommand(logger),
		newPriceCommand(),
		newTokenCommand(),
		newDBCommand(logger),
	)

	return root
}
