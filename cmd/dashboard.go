// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/dashboard"
	"restaurantai/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"status"},
	Short:   "Show readiness scores across the eight axes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		res, err := withSpinner("Loading dashboard", func() (api.Result[dashboard.Dashboard], error) {
			return rt.be.Dashboard(cmd.Context())
		})
		d, err := check(res, err, "loading the dashboard", "")
		if err != nil {
			return err
		}
		out, err := dashboard.Render(*d, terminal.Width())
		if err != nil {
			return err
		}
		pterm.Print(out)
		if d.DetailPending() {
			pterm.Info.Println("Answer the remaining detail questions with: restaurantai axis save <code> --level <n>")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
