// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version and the backend endpoint in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("restaurantai %s\n", Version)
		fmt.Printf("endpoint %s (%s)\n", rt.endpoint, rt.source)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
