// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/backend"
	"restaurantai/cli/internal/cards"
	"restaurantai/cli/internal/dashboard"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deepAxis string

var deepCmd = &cobra.Command{
	Use:   "deep",
	Short: "Ask the assistant follow-up questions about one axis",
}

var deepThreadCmd = &cobra.Command{
	Use:   "thread",
	Short: "Show the question thread of an axis",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		res, err := rt.be.DeepThread(cmd.Context(), deepAxis)
		th, err := check(res, err, "loading the thread", axisNotFound)
		if err != nil {
			return err
		}
		printDeepThread(*th, 0)
		return nil
	},
}

var deepAskCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		question := strings.Join(args, " ")
		res, err := withSpinner("Thinking", func() (api.Result[backend.DeepThread], error) {
			return rt.be.AskDeep(cmd.Context(), deepAxis, question)
		})
		th, err := check(res, err, "sending the question", axisNotFound)
		if err != nil {
			return err
		}
		// Newest exchange only.
		printDeepThread(*th, 2)
		return nil
	},
}

// printDeepThread prints the last n messages, or all of them when n is 0.
func printDeepThread(th backend.DeepThread, n int) {
	pterm.DefaultSection.Println(dashboard.Label(th.AxisCode, th.AxisName))
	msgs := th.Messages
	if n > 0 && len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	if len(msgs) == 0 {
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("No questions yet. Ask one with: restaurantai deep ask --axis " + th.AxisCode + " <question>"))
		return
	}
	for _, m := range msgs {
		printTurn(m.Role, m.Text)
	}
}

// printTurn prints one chat message with a role marker.
func printTurn(role, text string) {
	if role == cards.RoleUser {
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("You › ") + text)
	} else {
		pterm.Println(pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold).Sprint("AI  › ") + text)
	}
	pterm.Println()
}

func init() {
	deepCmd.PersistentFlags().StringVar(&deepAxis, "axis", "", "Axis code, e.g. location")
	_ = deepCmd.MarkPersistentFlagRequired("axis")
	deepCmd.AddCommand(deepThreadCmd, deepAskCmd)
	rootCmd.AddCommand(deepCmd)
}
