// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/pterm/pterm"
)

// Gauge draws score on a 0..MaxScore scale width cells wide, with a marker at okLine.
func Gauge(score, okLine float64, width int) string {
	if width < MaxScore {
		width = MaxScore
	}
	cell := func(v float64) int {
		v = math.Max(0, math.Min(MaxScore, v))
		return int(math.Round(v / MaxScore * float64(width)))
	}
	filled, ok := cell(score), cell(okLine)
	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == ok && i >= filled:
			b.WriteRune('┆')
		case i < filled:
			b.WriteRune('█')
		default:
			b.WriteRune('░')
		}
	}
	return b.String()
}

// ScoreTable lays the axes out as table rows: label, gauge, score, progress.
func ScoreTable(d Dashboard, gaugeWidth int) pterm.TableData {
	rows := pterm.TableData{{"Axis", "Score", "", "Answered"}}
	for _, a := range d.Axes {
		gauge := Gauge(a.Score, a.OKLine, gaugeWidth)
		if a.Passed() {
			gauge = pterm.FgGreen.Sprint(gauge)
		} else {
			gauge = pterm.FgYellow.Sprint(gauge)
		}
		rows = append(rows, []string{
			Label(a.Code, a.Name),
			gauge,
			fmt.Sprintf("%.1f", a.Rounded()),
			fmt.Sprintf("%d/%d", a.Answered, a.TotalQuestions),
		})
	}
	return rows
}

// Render returns the full dashboard view.
func Render(d Dashboard, termWidth int) (string, error) {
	var b strings.Builder
	muted := pterm.NewStyle(pterm.FgGray)

	who := d.UserEmail
	if who == "" {
		who = "not logged in"
	}
	b.WriteString(pterm.DefaultSection.Sprint("開業準備の現在地"))
	b.WriteString(muted.Sprint(who) + "\n\n")

	title := d.Concept.Title
	if title == "" {
		title = "コンセプト未設定"
	}
	desc := d.Concept.Description
	if desc == "" {
		desc = "結果を保存してコンセプトを確認してください。"
	}
	b.WriteString(pterm.Bold.Sprint(title) + "\n" + desc + "\n\n")

	gaugeWidth := 20
	if termWidth > 0 && termWidth < 60 {
		gaugeWidth = MaxScore
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(ScoreTable(d, gaugeWidth)).Srender()
	if err != nil {
		return "", err
	}
	b.WriteString(pterm.DefaultSection.WithLevel(2).Sprint("準備度レーダー"))
	b.WriteString(table + "\n")
	b.WriteString(muted.Sprint(fmt.Sprintf("OK line %g  ┆ marks the OK line", d.OKLine)) + "\n")

	if d.NextFocus != nil {
		b.WriteString("\n" + pterm.Bold.Sprint("次に強化: ") +
			fmt.Sprintf("%s（%s）\n", d.NextFocus.AxisName, d.NextFocus.Reason))
		if d.NextFocus.Message != "" {
			b.WriteString(d.NextFocus.Message + "\n")
		}
	}
	if d.DetailPending() {
		b.WriteString(pterm.FgYellow.Sprint(fmt.Sprintf("\nDetail questions answered: %d/%d\n",
			d.DetailProgress.Answered, d.DetailProgress.Total)))
	}
	if d.OwnerNote != "" {
		b.WriteString("\n" + pterm.Bold.Sprint("Owner note") + "\n" + d.OwnerNote + "\n")
	}
	if d.LatestStoreStory != "" {
		b.WriteString("\n" + pterm.Bold.Sprint("Store story") + "\n" + d.LatestStoreStory + "\n")
	}
	return b.String(), nil
}
