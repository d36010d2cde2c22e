// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"restaurantai/cli/internal/api"
	apperrors "restaurantai/cli/internal/errors"
	"restaurantai/cli/internal/logging"
	"restaurantai/cli/internal/simulation"
	"restaurantai/cli/internal/stream"
	"restaurantai/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	simulateAnswers string
	simulateResume  bool
	simulateNoWait  bool
)

// simulateCmd runs the simple simulation: twelve questions, an immediate concept and
// forecast, then expert advice streamed field by field.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Answer the opening questionnaire and get a concept, forecast and advice",
	Long: `The simulate command asks twelve questions about the restaurant you want to open
and submits them. The backend answers right away with a provisional concept and a
financial forecast, then streams advice on location, staffing, menu, marketing and
funding, shown live as it is written.

Answers can also be read from a YAML or JSON file with --answers, e.g.

  q1: office_workers
  q6: [ramen, izakaya]

No account is needed; the result is kept on this machine until you run
'restaurantai login --create'.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		answers, resumedAs, err := collectAnswers()
		if err != nil {
			return err
		}
		if err := answers.Validate(); err != nil {
			return err
		}

		token := resumedAs
		if token == "" {
			if token, err = simulation.EnsureGuestToken(guestStore()); err != nil {
				return err
			}
		}
		req := simulation.Request{Answers: answers.Payload(), GuestSessionToken: token}

		res, err := withSpinner("Creating your concept", func() (api.Result[simulation.ImmediateResult], error) {
			return rt.be.SubmitSimulation(ctx, req)
		})
		if err == nil && res.Status == http.StatusBadRequest {
			pterm.Error.Println("The backend rejected these answers. Check them and try again.")
			if res.Detail != "" {
				pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("Details: " + res.Detail))
			}
			return shownError{apperrors.WithStatus(apperrors.HTTP, res.Status, "answers rejected")}
		}
		result, err := check(res, err, "submitting your answers", "")
		if err != nil {
			return err
		}

		printImmediate(*result)

		loggedIn := false
		if tok, _ := rt.client.Tokens().AccessToken(); tok != "" {
			loggedIn = true
		}
		if loggedIn {
			if err := simulation.ClearPending(); err != nil {
				rt.log.Debug("clear pending failed", rt.log.Args("error", err.Error()))
			}
		} else if err := simulation.SavePending(simulation.Pending{Request: req, SessionID: result.SessionID}); err != nil {
			rt.log.Warn("could not keep the result for account creation", rt.log.Args("error", err.Error()))
		}

		if !simulateNoWait {
			if err := streamAdvice(cmd, result.SessionID); err != nil {
				return err
			}
		}

		if !loggedIn {
			pterm.Println()
			pterm.Info.Println("Save this result to your own page with: restaurantai login --create")
		}
		return nil
	},
}

// collectAnswers picks the answer source from the flags. For a resumed draft it
// also returns the guest token the draft was made with.
func collectAnswers() (simulation.Answers, string, error) {
	switch {
	case simulateResume:
		p, ok, err := simulation.LoadPending()
		if err != nil {
			return simulation.Answers{}, "", err
		}
		if !ok {
			return simulation.Answers{}, "", errors.New("no saved simulation to resume; run 'restaurantai simulate'")
		}
		a, err := simulation.FromPayload(p.Answers)
		return a, p.GuestSessionToken, err
	case simulateAnswers != "":
		a, err := simulation.LoadAnswersFile(simulateAnswers)
		return a, "", err
	}
	if !terminal.Interactive() {
		return simulation.Answers{}, "", errors.New("no terminal for the questionnaire; pass --answers <file>")
	}
	var a simulation.Answers
	return a, "", askQuestions(&a)
}

// askQuestions walks the catalog with interactive selects.
func askQuestions(a *simulation.Answers) error {
	total := len(simulation.Questions)
	for _, q := range simulation.Questions {
		labels := make([]string, len(q.Options))
		values := make(map[string]string, len(q.Options))
		for i, o := range q.Options {
			labels[i] = o.Label
			values[o.Label] = o.Value
		}
		pterm.DefaultSection.WithLevel(2).Println(fmt.Sprintf("Q%d/%d %s", q.Number, total, q.Title))

		if q.Kind == simulation.Single {
			picked, err := pterm.DefaultInteractiveSelect.
				WithOptions(labels).
				WithMaxHeight(len(labels)).
				Show(q.Prompt)
			if err != nil {
				return err
			}
			if err := a.Set(q.ID, []string{values[picked]}); err != nil {
				return err
			}
			continue
		}

		for {
			picked, err := pterm.DefaultInteractiveMultiselect.
				WithOptions(labels).
				WithMaxHeight(len(labels)).
				Show(q.Prompt + " (space to select, enter to confirm)")
			if err != nil {
				return err
			}
			chosen := make([]string, 0, len(picked))
			for _, l := range picked {
				chosen = append(chosen, values[l])
			}
			if len(chosen) == 0 {
				pterm.Warning.Println("Pick at least one option.")
				continue
			}
			if err := a.Set(q.ID, chosen); err != nil {
				pterm.Warning.Println(err.Error())
				continue
			}
			break
		}
	}
	return nil
}

func printImmediate(r simulation.ImmediateResult) {
	pterm.DefaultSection.Println("診断結果")
	if r.ConceptTitle != "" {
		pterm.Println(pterm.Bold.Sprint(r.ConceptTitle))
	}
	if r.ConceptDetail != "" {
		pterm.Println(r.ConceptDetail)
	}

	data := pterm.TableData{{"収支予想", ""}}
	for _, row := range r.FinancialForecast.Rows() {
		data = append(data, []string{row[0], row[1]})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(data).Render(); err != nil {
		rt.log.Debug("render forecast failed", rt.log.Args("error", err.Error()))
	}

	if r.IndustryNotes != "" {
		pterm.DefaultSection.WithLevel(2).Println("業界の留意事項")
		pterm.Println(r.IndustryNotes)
	}
}

// streamAdvice follows the advice stream of sessionID until it finishes.
func streamAdvice(cmd *cobra.Command, sessionID int64) error {
	ctx := cmd.Context()
	agg := stream.New(rt.endpoint, stream.WithLogger(rt.log))
	defer agg.Close()

	view := startLiveStream(agg, terminal.Width())
	if view == nil {
		pterm.Println("Generating advice...")
	}
	agg.SetSession(ctx, &sessionID)
	snap, err := agg.Wait(ctx)
	view.Stop()

	printStreamResult(snap)
	if err != nil {
		pterm.Warning.Println("Stopped before the advice was complete.")
		return shownError{err}
	}
	if snap.Status == stream.ClosedError {
		partial := false
		for _, f := range stream.Fields {
			if snap.Text(f) != "" {
				partial = true
				break
			}
		}
		pterm.Error.Println(snap.Err)
		logging.PresentStreamError(snap.Cause, partial)
		return shownError{apperrors.New(apperrors.Stream, snap.Err)}
	}
	return nil
}

// memoryGuest keeps a guest token for one run when no keychain is available.
type memoryGuest struct{ token string }

func (m *memoryGuest) GuestToken() (string, error)    { return m.token, nil }
func (m *memoryGuest) SetGuestToken(tok string) error { m.token = tok; return nil }

func guestStore() simulation.GuestStore {
	if rt.keys != nil {
		return rt.keys
	}
	return &memoryGuest{}
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVar(&simulateAnswers, "answers", "", "Read answers from a YAML or JSON file instead of asking")
	simulateCmd.Flags().BoolVar(&simulateResume, "resume", false, "Submit the simulation saved on this machine")
	simulateCmd.Flags().BoolVar(&simulateNoWait, "no-advice", false, "Skip the streamed advice and print only the immediate result")
	simulateCmd.MarkFlagsMutuallyExclusive("answers", "resume")
}
