// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/traders/internal/platform/apperr"
	"github.com/taibuivan/traders/pkg/money"
)

func newPriceCommand() *cobra.Command {
	var fromPaise bool

	cmd := &cobra.Command{
		Use:   "price <literal>",
		Short: "Parse a rupee literal and print it in canonical form",
		Long: `Parse a rupee literal such as "₹2,49,999" or "Rs. 1249.50" and print
its value in paise next to the canonical Indian-grouped display form.

With --paise the argument is read as a whole number of paise instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				amount money.Amount
				err    error
			)

			if fromPaise {
				var paise int64
				if _, err = fmt.Sscan(args[0], &paise); err != nil || paise < 0 {
					return fmt.Errorf("%q is not a non-negative number of paise", args[0])
				}
				amount = money.Amount(paise)
			} else if amount, err = money.ParseINR(args[0]); err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d paise\t%s\n", int64(amount), money.FormatINR(amount))
			return err
		},
	}

	cmd.Flags().BoolVar(&fromPaise, "paise", false, "read the argument as paise")
	return cmd
}

// describe flattens a validation error into one line per field so the CLI
// prints what the API would have answered with.
func describe(err error) error {
	appErr := apperr.As(err)
	if appErr == nil || len(appErr.Details) == 0 {
		return err
	}

	lines := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		lines = append(lines, fmt.Sprintf("--%s: %s", flagName(detail.Field), detail.Message))
	}
	return errors.New(appErr.Message + "\n  " + strings.Join(lines, "\n  "))
}

func flagName(field string) string {
	if field == "" {
		return "input"
	}
	return field
}
