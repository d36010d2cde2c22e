// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"restaurantai/cli/internal/auth"
	"restaurantai/cli/internal/simulation"

	"github.com/spf13/cobra"
)

var logoutAll bool

// logoutCmd clears the stored access token and login state.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved access token",
	Long: `The logout command removes the access token and login state from the OS keychain.
With --all it also forgets the guest session token and any saved guest simulation.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := rt.requireKeys()
		if err != nil {
			return err
		}
		if err := auth.NewService(rt.be, km).Logout(); err != nil {
			return err
		}
		if logoutAll {
			if err := km.ClearAll(); err != nil {
				return err
			}
			if err := simulation.ClearPending(); err != nil {
				return err
			}
			fmt.Println("✅ All credentials, guest data and tokens have been removed")
			return nil
		}
		fmt.Println("✅ Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.Flags().BoolVar(&logoutAll, "all", false, "Also remove the guest session and saved simulation")
}
