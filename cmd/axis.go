// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"sort"

	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/backend"
	"restaurantai/cli/internal/dashboard"
	apperrors "restaurantai/cli/internal/errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const axisNotFound = "That axis does not exist. Run 'restaurantai axis list' for the codes."

var (
	axisLevel int
	axisFile  string
)

var axisCmd = &cobra.Command{
	Use:   "axis",
	Short: "Inspect and save the detail answers of a readiness axis",
}

var axisListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the readiness axes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		res, err := rt.be.Axes(cmd.Context())
		list, err := check(res, err, "loading the axes", "")
		if err != nil {
			return err
		}
		data := pterm.TableData{{"Code", "Name"}}
		for _, a := range list.Axes {
			data = append(data, []string{a.Code, dashboard.Label(a.Code, a.Name)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var axisShowCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show an axis score, feedback and recorded answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		res, err := rt.be.Axis(cmd.Context(), args[0])
		d, err := check(res, err, "loading the axis", axisNotFound)
		if err != nil {
			return err
		}
		printAxis(*d)
		return nil
	},
}

// axisSaveCmd re-submits one level. Without --file the answers already stored
// for that level are sent again, which makes the backend rescore the axis.
var axisSaveCmd = &cobra.Command{
	Use:   "save <code>",
	Short: "Save the answers of one level and rescore the axis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		ctx := cmd.Context()
		code := args[0]

		var req backend.AxisAnswersRequest
		if axisFile != "" {
			raw, err := os.ReadFile(axisFile)
			if err != nil {
				return err
			}
			if !json.Valid(raw) {
				return apperrors.New(apperrors.Validation, axisFile+" is not valid JSON")
			}
			req = backend.AxisAnswersRequest{Level: axisLevel, Answers: raw}
		} else {
			res, err := rt.be.Axis(ctx, code)
			d, err := check(res, err, "loading the axis", axisNotFound)
			if err != nil {
				return err
			}
			req = d.LevelRequest(axisLevel)
		}

		res, err := withSpinner("Saving answers", func() (api.Result[backend.AxisDetail], error) {
			return rt.be.SaveAxisLevel(ctx, code, req)
		})
		d, err := check(res, err, "saving the answers", axisNotFound)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Level %d saved.", axisLevel)
		printAxis(*d)
		return nil
	},
}

func printAxis(d backend.AxisDetail) {
	pterm.DefaultSection.Println(dashboard.Label(d.Code, d.Name))
	pterm.Printfln("Score: %.1f / %d", d.Score, dashboard.MaxScore)
	if d.Feedback != "" {
		pterm.Println()
		pterm.Println(d.Feedback)
	}
	if len(d.Answers) == 0 {
		return
	}
	keys := make([]string, 0, len(d.Answers))
	for k := range d.Answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pterm.DefaultSection.WithLevel(2).Println(k)
		var buf bytes.Buffer
		if err := json.Indent(&buf, d.Answers[k], "", "  "); err != nil {
			pterm.Println(string(d.Answers[k]))
			continue
		}
		pterm.Println(buf.String())
	}
}

func init() {
	axisSaveCmd.Flags().IntVar(&axisLevel, "level", 1, "Level to save (1 or greater)")
	axisSaveCmd.Flags().StringVar(&axisFile, "file", "", "JSON file with the answers to send instead of the stored ones")
	axisCmd.AddCommand(axisListCmd, axisShowCmd, axisSaveCmd)
	rootCmd.AddCommand(axisCmd)
}
