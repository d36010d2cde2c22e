// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package simulation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ResultPath is where answers are submitted for the immediate result.
const ResultPath = "/simulations/simple/result"

// Request is the submission body.
type Request struct {
	Answers           []AnswerPayload `json:"answers" yaml:"answers"`
	GuestSessionToken string          `json:"guest_session_token" yaml:"guest_session_token"`
}

// FinancialForecast is the structured income estimate. Rates are percentages.
type FinancialForecast struct {
	MonthlySales    int64   `json:"monthly_sales"`
	RentBudget      int64   `json:"rent_budget"`
	CostOfGoodsRate float64 `json:"cost_of_goods_rate"`
	LaborCostRate   float64 `json:"labor_cost_rate"`
	ProfitMargin    float64 `json:"profit_margin"`
}

// ImmediateResult is returned synchronously; SessionID keys the advice stream.
type ImmediateResult struct {
	SessionID         int64             `json:"session_id"`
	ConceptTitle      string            `json:"concept_title,omitempty"`
	ConceptDetail     string            `json:"concept_detail,omitempty"`
	FinancialForecast FinancialForecast `json:"financial_forecast"`
	IndustryNotes     string            `json:"industry_notes"`
}

var yen = message.NewPrinter(language.Japanese)

// Yen formats an amount with digit grouping, e.g. 1,200,000円.
func Yen(amount int64) string {
	return yen.Sprintf("%d円", amount)
}

// Percent formats a rate as the backend sent it.
func Percent(rate float64) string {
	return yen.Sprintf("%v%%", rate)
}

// Rows returns the forecast as label/value pairs for display.
func (f FinancialForecast) Rows() [][2]string {
	return [][2]string{
		{"想定月商", Yen(f.MonthlySales)},
		{"推奨家賃（月商の10%）", Yen(f.RentBudget)},
		{"原価率", Percent(f.CostOfGoodsRate)},
		{"人件費率", Percent(f.LaborCostRate)},
		{"利益率", Percent(f.ProfitMargin)},
	}
}
