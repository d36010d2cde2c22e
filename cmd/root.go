// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Restaurant AI CLI.
// It implements subcommands for the opening simulation, the readiness dashboard,
// topic card chats and authentication using the Cobra CLI framework, and renders
// results in the terminal with pterm.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/backend"
	"restaurantai/cli/internal/config"
	"restaurantai/cli/internal/keychain"
	"restaurantai/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	apiEndpoint string
	verbose     bool
	rt          *app
)

// app holds what every command shares once flags and config are resolved.
type app struct {
	cfg      config.Config
	endpoint string
	source   config.Source
	log      *pterm.Logger
	// keys is nil when no keyring backend could be opened.
	keys    *keychain.Manager
	keysErr error
	client  *api.Client
	be      backend.API
}

// requireKeys returns the keychain or explains why it is unavailable.
func (r *app) requireKeys() (*keychain.Manager, error) {
	if r.keys == nil {
		return nil, fmt.Errorf("secure storage is not available: %w", r.keysErr)
	}
	return r.keys, nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "restaurantai",
	Short:         "Restaurant AI CLI for planning a restaurant opening",
	Long:          `Restaurant AI walks an owner-to-be through a quick opening simulation, streams expert advice, and tracks readiness across eight axes on a dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		r, err := setup(apiEndpoint, verbose)
		if err != nil {
			return err
		}
		rt = r
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// setup resolves configuration and builds the backend client.
func setup(flagEndpoint string, verbose bool) (*app, error) {
	if dir, err := os.Getwd(); err == nil {
		if err := config.LoadEnv(dir); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	endpoint, source, err := config.ResolveEndpoint(flagEndpoint, cfg)
	if err != nil {
		return nil, err
	}
	log := logging.New(config.ResolveLogLevel(cfg), verbose)
	log.Debug("endpoint resolved", log.Args("endpoint", endpoint, "source", string(source)))

	r := &app{cfg: cfg, endpoint: endpoint, source: source, log: log}
	var tokens api.TokenProvider = api.NewMemoryTokens("")
	if km, err := keychain.GetManager(); err == nil {
		r.keys = km
		tokens = km
	} else {
		r.keysErr = err
		log.Warn("keychain unavailable, credentials will not be kept", log.Args("error", err.Error()))
	}
	r.client = api.New(endpoint, tokens, api.WithLogger(log))
	r.be = backend.New(r.client)
	return r, nil
}

// shownError marks an error whose message was already printed.
type shownError struct{ error }

func (e shownError) Unwrap() error { return e.error }

// Execute runs the CLI application. Interrupts cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var shown shownError
		if !errors.As(err, &shown) {
			fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiEndpoint, "api-endpoint", "", "Backend API base URL (overrides env and config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output")
}
