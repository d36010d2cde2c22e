// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/cards"
	"restaurantai/cli/internal/dashboard"
	apperrors "restaurantai/cli/internal/errors"
	"restaurantai/cli/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	Method string
	URI    string
	Body   string
	Auth   string
}

// fakeBackend answers every request with reply and remembers the last request.
func fakeBackend(t *testing.T, status int, reply string) (API, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*rec = recorded{Method: r.Method, URI: r.URL.RequestURI(), Body: string(b), Auth: r.Header.Get("Authorization")}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return New(api.New(srv.URL, api.NewMemoryTokens("tok"))), rec
}

func TestGoogleAuthURL(t *testing.T) {
	be, rec := fakeBackend(t, http.StatusOK, `{"auth_url":"https://accounts.example/o"}`)
	res, err := be.GoogleAuthURL(context.Background(), true)
	require.NoError(t, err)
	require.NotNil(t, res.Data)
	assert.Equal(t, "https://accounts.example/o", res.Data.AuthURL)
	assert.Equal(t, "/auth/google/url?allow_create=true", rec.URI)
	assert.Equal(t, "Bearer tok", rec.Auth)
}

func TestDashboardIsFilled(t *testing.T) {
	be, rec := fakeBackend(t, http.StatusOK, `{"axes":[{"code":"menu","score":7}],"ok_line":5,"growth_zone":6,"user_email":"a@b"}`)
	res, err := be.Dashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res.Data)
	assert.Equal(t, dashboard.Path, rec.URI)
	assert.Len(t, res.Data.Axes, len(dashboard.AxisOrder))
	assert.Equal(t, "menu", res.Data.Axes[7].Code)
}

func TestDashboardUnauthorized(t *testing.T) {
	be, _ := fakeBackend(t, http.StatusUnauthorized, `{"detail":"Not authenticated"}`)
	res, err := be.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Nil(t, res.Data)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Equal(t, "Not authenticated", res.Detail)
}

func completeRequest(t *testing.T) simulation.Request {
	t.Helper()
	var a simulation.Answers
	for _, q := range simulation.Questions {
		require.NoError(t, a.Set(q.ID, []string{q.Options[0].Value}))
	}
	return simulation.Request{Answers: a.Payload(), GuestSessionToken: "guest-1"}
}

func TestSubmitSimulation(t *testing.T) {
	be, rec := fakeBackend(t, http.StatusOK, `{
		"session_id": 42, "concept_title": "T",
		"financial_forecast": {"monthly_sales": 3000000, "rent_budget": 300000, "cost_of_goods_rate": 30, "labor_cost_rate": 28, "profit_margin": 10},
		"industry_notes": "N"}`)
	res, err := be.SubmitSimulation(context.Background(), completeRequest(t))
	require.NoError(t, err)
	require.NotNil(t, res.Data)
	assert.Equal(t, int64(42), res.Data.SessionID)
	assert.Equal(t, int64(3000000), res.Data.FinancialForecast.MonthlySales)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, simulation.ResultPath, rec.URI)
	var body simulation.Request
	require.NoError(t, json.Unmarshal([]byte(rec.Body), &body))
	assert.Equal(t, "guest-1", body.GuestSessionToken)
	assert.Len(t, body.Answers, 12)
}

func TestSubmitSimulationRejectsIncompleteLocally(t *testing.T) {
	be, rec := fakeBackend(t, http.StatusOK, `{}`)
	req := completeRequest(t)
	req.Answers = req.Answers[:5]
	_, err := be.SubmitSimulation(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Validation))
	assert.Empty(t, rec.Method, "nothing must be sent")
}

func TestSaveAxisLevelBody(t *testing.T) {
	be, rec := fakeBackend(t, http.StatusOK, `{"code":"funds","name":"資金計画","score":6,"answers":{},"feedback":"ok"}`)
	detail := AxisDetail{Answers: map[string]json.RawMessage{"level_1": json.RawMessage(`{"q":"a"}`)}}

	_, err := be.SaveAxisLevel(context.Background(), "funds", detail.LevelRequest(1))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/axes/funds/answers", rec.URI)
	assert.JSONEq(t, `{"level":1,"answers":{"q":"a"}}`, rec.Body)

	_, err = be.SaveAxisLevel(context.Background(), "funds", detail.LevelRequest(2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":2,"answers":{}}`, rec.Body)
}

func TestDeepQuestions(t *testing.T) {
	be, rec := fakeBackend(t, http.StatusOK, `{"axis_code":"location","axis_name":"立地","messages":[{"role":"user","text":"q","created_at":"t"}]}`)

	res, err := be.DeepThread(context.Background(), "location")
	require.NoError(t, err)
	assert.Equal(t, "/deep_questions?axis=location", rec.URI)
	require.NotNil(t, res.Data)
	assert.Len(t, res.Data.Messages, 1)

	_, err = be.AskDeep(context.Background(), "location", "駅前はどう？")
	require.NoError(t, err)
	assert.Equal(t, "/deep_questions/messages", rec.URI)
	assert.JSONEq(t, `{"axis_code":"location","question":"駅前はどう？"}`, rec.Body)
}

func TestDeepDive(t *testing.T) {
	be, rec := fakeBackend(t, http.StatusOK, `{"card_id":"c1","card_title":"T","initial_question":"Q","messages":[]}`)

	_, err := be.SendDeepDive(context.Background(), "c1", "  hello ")
	require.NoError(t, err)
	assert.Equal(t, "/deep-dive/chat/c1", rec.URI)
	assert.JSONEq(t, `{"message":"hello"}`, rec.Body)

	*rec = recorded{}
	_, err = be.SendDeepDive(context.Background(), "c1", "   ")
	assert.True(t, apperrors.Is(err, apperrors.Validation))
	assert.Empty(t, rec.Method)

	_, err = be.CompleteDeepDive(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/deep-dive/card/c1/complete", rec.URI)
	assert.Empty(t, rec.Body)
}

func TestCardRoutes(t *testing.T) {
	topic, err := cards.Lookup("interior-exterior")
	require.NoError(t, err)

	be, rec := fakeBackend(t, http.StatusOK, `{"statuses":[{"card_id":"3","is_completed":true,"summary":"s","chat_history":null}]}`)
	status, err := be.CardStatuses(context.Background(), topic)
	require.NoError(t, err)
	assert.Equal(t, "/api/interior-exterior/status", rec.URI)
	require.NotNil(t, status.Data)
	assert.True(t, status.Data.ByID()["3"].IsCompleted)

	_, err = be.CardChat(context.Background(), topic, CardChatRequest{CardID: "3", UserMessage: "木目調"})
	require.NoError(t, err)
	assert.Equal(t, "/api/interior-exterior/chat", rec.URI)
	assert.JSONEq(t, `{"card_id":"3","user_message":"木目調","history":[]}`, rec.Body)

	_, err = be.CardSummary(context.Background(), topic, CardSummaryRequest{
		CardID:      "3",
		ChatHistory: []cards.Message{{Role: cards.RoleAssistant, Content: "q"}, {Role: cards.RoleUser, Content: "a"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/interior-exterior/summary", rec.URI)
	assert.JSONEq(t, `{"card_id":"3","chat_history":[{"role":"assistant","content":"q"},{"role":"user","content":"a"}]}`, rec.Body)

	_, err = be.CardSummary(context.Background(), topic, CardSummaryRequest{CardID: "3"})
	assert.True(t, apperrors.Is(err, apperrors.Validation))
}

func TestPathSegmentsAreEscaped(t *testing.T) {
	be, rec := fakeBackend(t, http.StatusNotFound, `{"detail":"Axis not found"}`)
	res, err := be.Axis(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/axes/a%2Fb", rec.URI)
	assert.Equal(t, "Axis not found", res.Detail)
}
