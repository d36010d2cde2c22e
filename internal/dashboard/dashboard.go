// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dashboard models the owner's readiness overview and lays it out for the
// terminal: eight scored axes against an OK line, the concept and the next focus.
package dashboard

import "math"

// Path is the dashboard route.
const Path = "/dashboard"

// Defaults used when the backend omits an axis or a threshold.
const (
	DefaultOKLine     = 5
	DefaultGrowthZone = 6
	DefaultQuestions  = 3
	// MaxScore is the top of the score scale.
	MaxScore = 10
)

// AxisOrder is the fixed display order of the readiness axes.
var AxisOrder = []string{"concept", "funds", "compliance", "operation", "location", "equipment", "marketing", "menu"}

var axisLabels = map[string]string{
	"concept":    "コンセプト",
	"funds":      "資金計画",
	"compliance": "コンプライアンス",
	"operation":  "オペレーション",
	"location":   "立地",
	"equipment":  "設備",
	"marketing":  "集客",
	"menu":       "メニュー",
}

// Label returns the display name of an axis code, falling back to fallback and then code.
func Label(code, fallback string) string {
	if l, ok := axisLabels[code]; ok {
		return l
	}
	if fallback != "" {
		return fallback
	}
	return code
}

type Concept struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AxisSummary is the score card of one axis.
type AxisSummary struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Score          float64 `json:"score"`
	OKLine         float64 `json:"ok_line"`
	GrowthZone     float64 `json:"growth_zone"`
	Comment        string  `json:"comment"`
	NextStep       string  `json:"next_step"`
	Answered       int     `json:"answered"`
	TotalQuestions int     `json:"total_questions"`
	Missing        *int    `json:"missing,omitempty"`
}

// Passed reports whether the score reached the OK line.
func (a AxisSummary) Passed() bool { return a.Score >= a.OKLine }

// Rounded returns the score rounded to one decimal.
func (a AxisSummary) Rounded() float64 { return math.Round(a.Score*10) / 10 }

type DetailProgress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

type NextFocus struct {
	AxisCode string `json:"axis_code"`
	AxisName string `json:"axis_name"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
}

// Dashboard is the GET /dashboard response.
type Dashboard struct {
	Concept          Concept        `json:"concept"`
	Axes             []AxisSummary  `json:"axes"`
	DetailProgress   DetailProgress `json:"detail_progress"`
	NextFocus        *NextFocus     `json:"next_focus,omitempty"`
	OKLine           float64        `json:"ok_line"`
	GrowthZone       float64        `json:"growth_zone"`
	OwnerNote        string         `json:"owner_note,omitempty"`
	LatestStoreStory string         `json:"latest_store_story,omitempty"`
	UserEmail        string         `json:"user_email"`
}

// DetailPending reports whether detail questions remain unanswered.
func (d Dashboard) DetailPending() bool {
	return d.DetailProgress.Total > 0 && d.DetailProgress.Answered < d.DetailProgress.Total
}

// Fill returns d with exactly the axes of AxisOrder, in that order. Axes the backend
// did not score get a zero placeholder; axes outside AxisOrder are dropped.
func Fill(d Dashboard) Dashboard {
	if d.OKLine == 0 {
		d.OKLine = DefaultOKLine
	}
	if d.GrowthZone == 0 {
		d.GrowthZone = DefaultGrowthZone
	}
	byCode := make(map[string]AxisSummary, len(d.Axes))
	for _, a := range d.Axes {
		byCode[a.Code] = a
	}
	filled := make([]AxisSummary, 0, len(AxisOrder))
	for _, code := range AxisOrder {
		if a, ok := byCode[code]; ok {
			filled = append(filled, a)
			continue
		}
		missing := DefaultQuestions
		filled = append(filled, AxisSummary{
			Code:           code,
			Name:           Label(code, ""),
			OKLine:         d.OKLine,
			GrowthZone:     d.GrowthZone,
			Comment:        "No score yet. Answer the detail questions to calculate.",
			NextStep:       "Open the detail questions for this axis to generate a score.",
			TotalQuestions: DefaultQuestions,
			Missing:        &missing,
		})
	}
	d.Axes = filled
	return d
}
