// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/backend"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const cardNotFound = "That card does not exist."

var deepDiveCmd = &cobra.Command{
	Use:   "deepdive",
	Short: "Work through a deep-dive card with the assistant",
}

var deepDiveShowCmd = &cobra.Command{
	Use:   "show <card>",
	Short: "Show the card question and the chat so far",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		res, err := rt.be.DeepDiveChat(cmd.Context(), args[0])
		chat, err := check(res, err, "loading the card", cardNotFound)
		if err != nil {
			return err
		}
		printDeepDive(*chat, 0)
		return nil
	},
}

var deepDiveSendCmd = &cobra.Command{
	Use:   "send <card> <message>",
	Short: "Send a message on a card",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		msg := strings.Join(args[1:], " ")
		res, err := withSpinner("Thinking", func() (api.Result[backend.DeepDiveChat], error) {
			return rt.be.SendDeepDive(cmd.Context(), args[0], msg)
		})
		chat, err := check(res, err, "sending the message", cardNotFound)
		if err != nil {
			return err
		}
		printDeepDive(*chat, 2)
		return nil
	},
}

var deepDiveCompleteCmd = &cobra.Command{
	Use:   "complete <card>",
	Short: "Mark a card complete and print its summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		res, err := withSpinner("Summarizing", func() (api.Result[backend.DeepDiveCompletion], error) {
			return rt.be.CompleteDeepDive(cmd.Context(), args[0])
		})
		done, err := check(res, err, "completing the card", cardNotFound)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Card %s is %s.", done.CardID, done.Status)
		if done.Summary != nil && *done.Summary != "" {
			pterm.DefaultBox.WithTitle("Summary").Println(*done.Summary)
		}
		return nil
	},
}

// printDeepDive prints the card header and the last n messages, or all when n is 0.
func printDeepDive(c backend.DeepDiveChat, n int) {
	pterm.DefaultSection.Println(c.CardTitle)
	msgs := c.Messages
	if n == 0 || len(msgs) <= n {
		pterm.Println(pterm.Bold.Sprint(c.InitialQuestion))
		pterm.Println()
	}
	if n > 0 && len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	for _, m := range msgs {
		printTurn(m.Role, m.Message)
	}
	if c.Summary != nil && *c.Summary != "" {
		pterm.DefaultBox.WithTitle("Summary").Println(*c.Summary)
	}
}

func init() {
	deepDiveCmd.AddCommand(deepDiveShowCmd, deepDiveSendCmd, deepDiveCompleteCmd)
	rootCmd.AddCommand(deepDiveCmd)
}
