// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/traders/internal/platform/constants"
	"github.com/taibuivan/traders/internal/platform/sec"
)

func newTokenCommand() *cobra.Command {
	var (
		keyPath string
		subject string
		name    string
		role    string
		ttl     = constants.DefaultTokenTTL
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a dashboard access token",
		Long: `Mint an RS256 access token for the admin or vendor dashboard.

The private key is read from --key, or from JWT_PRIVATE_KEY_PATH when the
flag is omitted. The API verifies the token with the matching public key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if keyPath == "" {
				keyPath = os.Getenv("JWT_PRIVATE_KEY_PATH")
			}
			if keyPath == "" {
				return fmt.Errorf("no private key: pass --key or set JWT_PRIVATE_KEY_PATH")
			}

			userRole, ok := sec.ParseRole(role)
			if !ok {
				return fmt.Errorf("unknown role %q (want admin, vendor or buyer)", role)
			}

			signer, err := sec.NewSigner(keyPath, constants.AuthIssuer)
			if err != nil {
				return err
			}

			token, err := signer.GenerateAccessToken(subject, name, userRole, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&keyPath, "key", "", "PEM private key path")
	cmd.Flags().StringVar(&subject, "subject", "", "account identifier (sub claim)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", string(sec.RoleVendor), "admin, vendor or buyer")
	cmd.Flags().DurationVar(&ttl, "ttl", constants.DefaultTokenTTL, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
