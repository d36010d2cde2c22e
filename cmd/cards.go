// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/backend"
	"restaurantai/cli/internal/cards"
	"restaurantai/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Chat through the topic cards: " + strings.Join(cards.Slugs(), ", "),
}

// resolveCard looks up a topic and one of its cards.
func resolveCard(slug, id string) (cards.Topic, cards.Card, error) {
	t, err := cards.Lookup(slug)
	if err != nil {
		return cards.Topic{}, cards.Card{}, fmt.Errorf("%w %q; choose one of %s", err, slug, strings.Join(cards.Slugs(), ", "))
	}
	c, ok := t.Card(id)
	if !ok {
		return t, cards.Card{}, fmt.Errorf("topic %s has no card %q; run 'restaurantai cards status %s'", t.Slug, id, t.Slug)
	}
	return t, c, nil
}

// loadStatuses fetches progress for every card of t.
func loadStatuses(ctx context.Context, t cards.Topic) (map[string]backend.CardStatus, error) {
	res, err := rt.be.CardStatuses(ctx, t)
	list, err := check(res, err, "loading "+t.Label+" progress", "")
	if err != nil {
		return nil, err
	}
	return list.ByID(), nil
}

var cardsStatusCmd = &cobra.Command{
	Use:   "status <topic>",
	Short: "List the cards of a topic and their progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		t, err := cards.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("%w %q; choose one of %s", err, args[0], strings.Join(cards.Slugs(), ", "))
		}
		statuses, err := loadStatuses(cmd.Context(), t)
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println(t.Label)
		data := pterm.TableData{{"Card", "Step", "Title", "Status"}}
		done := 0
		for _, c := range t.Cards() {
			st := statuses[c.ID]
			state := pterm.NewStyle(pterm.FgGray).Sprint("not started")
			switch {
			case st.IsCompleted:
				state = pterm.FgGreen.Sprint("✓ done")
				done++
			case len(st.ChatHistory) > 0:
				state = pterm.FgYellow.Sprint("in progress")
			}
			data = append(data, []string{c.ID, strconv.Itoa(c.Step), c.Title, state})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		pterm.Printfln("%d/%d cards complete", done, len(t.Cards()))
		return nil
	},
}

var cardsChatCmd = &cobra.Command{
	Use:   "chat <topic> <card>",
	Short: "Chat with the assistant about one card",
	Long: `The chat command resumes the conversation of a card and reads your replies line
by line. Type /summary to have the assistant summarize the card, or /quit to leave.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		if !terminal.Interactive() {
			return errors.New("cards chat needs an interactive terminal")
		}
		ctx := cmd.Context()
		t, c, err := resolveCard(args[0], args[1])
		if err != nil {
			return err
		}
		statuses, err := loadStatuses(ctx, t)
		if err != nil {
			return err
		}
		conv := cards.NewConversation(t, c, statuses[c.ID].ChatHistory)

		pterm.DefaultSection.Println(fmt.Sprintf("%s › %s", t.Label, c.Title))
		for _, m := range conv.Messages() {
			printTurn(m.Role, m.Content)
		}

		exchange := func(msg string, history []cards.Message) (string, error) {
			res, err := withSpinner("Thinking", func() (api.Result[backend.CardChatResponse], error) {
				return rt.be.CardChat(ctx, t, backend.CardChatRequest{CardID: c.ID, UserMessage: msg, History: history})
			})
			reply, err := check(res, err, "sending the message", cardNotFound)
			if err != nil {
				return "", err
			}
			return reply.AssistantMessage, nil
		}

		for {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			line, err := readLine(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("You › "), false)
			if err != nil {
				return err
			}
			switch line {
			case "":
				continue
			case "/quit", "/exit":
				return nil
			case "/summary":
				return summarize(ctx, t, c, conv.Messages())
			}
			reply, err := conv.Send(line, exchange)
			switch {
			case errors.Is(err, cards.ErrEmptyReply):
				pterm.Warning.Println("The assistant returned an empty reply. Try again.")
				continue
			case err != nil:
				return err
			}
			pterm.Println()
			printTurn(cards.RoleAssistant, reply)
		}
	},
}

var cardsSummaryCmd = &cobra.Command{
	Use:   "summary <topic> <card>",
	Short: "Summarize the chat of one card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		t, c, err := resolveCard(args[0], args[1])
		if err != nil {
			return err
		}
		statuses, err := loadStatuses(cmd.Context(), t)
		if err != nil {
			return err
		}
		st := statuses[c.ID]
		if len(st.ChatHistory) == 0 && st.Summary != nil {
			pterm.DefaultBox.WithTitle(c.Title).Println(*st.Summary)
			return nil
		}
		return summarize(cmd.Context(), t, c, st.ChatHistory)
	},
}

func summarize(ctx context.Context, t cards.Topic, c cards.Card, history []cards.Message) error {
	res, err := withSpinner("Summarizing", func() (api.Result[backend.CardSummaryResponse], error) {
		return rt.be.CardSummary(ctx, t, backend.CardSummaryRequest{CardID: c.ID, ChatHistory: history})
	})
	sum, err := check(res, err, "summarizing the card", cardNotFound)
	if err != nil {
		return err
	}
	pterm.DefaultBox.WithTitle(c.Title).Println(sum.Summary)
	return nil
}

func init() {
	cardsCmd.AddCommand(cardsStatusCmd, cardsChatCmd, cardsSummaryCmd)
	rootCmd.AddCommand(cardsCmd)
}
