// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"restaurantai/cli/internal/auth"
	apperrors "restaurantai/cli/internal/errors"
	"restaurantai/cli/internal/httperrors"

	"github.com/spf13/cobra"
)

// whoamiCmd validates the stored token against the backend and prints the account.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command checks the stored access token with the backend and prints
the account email. An expired token is removed. When the backend cannot be reached,
the last confirmed account is shown instead.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := rt.requireKeys()
		if err != nil {
			return err
		}
		svc := auth.NewService(rt.be, km)
		account, ok, err := svc.WhoAmI(cmd.Context())
		if err != nil {
			if apperrors.Is(err, apperrors.Transport) {
				if st, serr := svc.Cached(); serr == nil && st.LoggedIn && st.Account != "" {
					fmt.Printf("👤 Current user: %s (offline, last confirmed)\n", st.Account)
					return nil
				}
			}
			return shownError{httperrors.Present(err, "checking your session", rt.endpoint, "")}
		}
		if !ok {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'restaurantai login' to get started.")
			return nil
		}
		fmt.Printf("👤 Current user: %s\n", account)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
