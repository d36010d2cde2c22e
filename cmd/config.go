// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"restaurantai/cli/internal/config"
	
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the saved CLI configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration and where each value comes from",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		data := pterm.TableData{
			{"Setting", "Value", "Source"},
			{"api endpoint", rt.endpoint, string(rt.source)},
			{"log level", config.ResolveLogLevel(rt.cfg), logLevelSource()},
			{"config file", path, ""},
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func logLevelSource() string {
	switch {
	case verbose:
		return string(config.SourceFlag)
	case os.Getenv(config.EnvLogLevel) != "":
		return string(config.SourceEnv)
	case rt.cfg.LogLevel != "warn":
		return string(config.SourceFile)
	default:
		return string(config.SourceDefault)
	}
}

var configSetEndpointCmd = &cobra.Command{
	Use:   "set-endpoint <url>",
	Short: "Save the backend API base URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint, err := config.NormalizeEndpoint(args[0])
		if err != nil {
			return err
		}
		c := rt.cfg
		c.APIEndpoint = endpoint
		if err := config.Save(c); err != nil {
			return err
		}
		fmt.Printf("✅ API endpoint saved: %s\n", endpoint)
		return nil
	},
}

var configSetLogLevelCmd = &cobra.Command{
	Use:       "set-log-level <trace|debug|info|warn|error>",
	Short:     "Save the diagnostics log level",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"trace", "debug", "info", "warn", "error"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "trace", "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("unknown log level %q", args[0])
		}
		c := rt.cfg
		c.LogLevel = args[0]
		if err := config.Save(c); err != nil {
			return err
		}
		fmt.Printf("✅ Log level saved: %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetEndpointCmd, configSetLogLevelCmd)
	rootCmd.AddCommand(configCmd)
}
