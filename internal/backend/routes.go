// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/cards"
	"restaurantai/cli/internal/dashboard"
	apperrors "restaurantai/cli/internal/errors"
	"restaurantai/cli/internal/simulation"
)

func requireValue(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return apperrors.New(apperrors.Validation, name+" is required")
	}
	return nil
}

// GoogleAuthURL calls GET /auth/google/url.
func (h *HTTP) GoogleAuthURL(ctx context.Context, allowCreate bool) (api.Result[AuthURL], error) {
	q := url.Values{"allow_create": {strconv.FormatBool(allowCreate)}}
	return api.Fetch[AuthURL](ctx, h.c, "/auth/google/url?"+q.Encode())
}

// Dashboard calls GET /dashboard. Missing axes are filled in display order.
func (h *HTTP) Dashboard(ctx context.Context) (api.Result[dashboard.Dashboard], error) {
	res, err := api.Fetch[dashboard.Dashboard](ctx, h.c, dashboard.Path)
	if err == nil && res.Data != nil {
		filled := dashboard.Fill(*res.Data)
		res.Data = &filled
	}
	return res, err
}

// SubmitSimulation posts complete answers for the immediate result.
func (h *HTTP) SubmitSimulation(ctx context.Context, req simulation.Request) (api.Result[simulation.ImmediateResult], error) {
	var zero api.Result[simulation.ImmediateResult]
	a, err := simulation.FromPayload(req.Answers)
	if err != nil {
		return zero, err
	}
	if err := a.Validate(); err != nil {
		return zero, err
	}
	if err := requireValue("guest session token", req.GuestSessionToken); err != nil {
		return zero, err
	}
	return api.Fetch[simulation.ImmediateResult](ctx, h.c, simulation.ResultPath,
		api.WithMethod(api.MethodPost), api.WithBody(req))
}

// Axes calls GET /axes.
func (h *HTTP) Axes(ctx context.Context) (api.Result[AxisList], error) {
	return api.Fetch[AxisList](ctx, h.c, "/axes")
}

// Axis calls GET /axes/{code}.
func (h *HTTP) Axis(ctx context.Context, code string) (api.Result[AxisDetail], error) {
	if err := requireValue("axis code", code); err != nil {
		return api.Result[AxisDetail]{}, err
	}
	return api.Fetch[AxisDetail](ctx, h.c, "/axes/"+url.PathEscape(code))
}

// SaveAxisLevel calls PUT /axes/{code}/answers.
func (h *HTTP) SaveAxisLevel(ctx context.Context, code string, req AxisAnswersRequest) (api.Result[AxisDetail], error) {
	if err := requireValue("axis code", code); err != nil {
		return api.Result[AxisDetail]{}, err
	}
	if req.Level < 1 {
		return api.Result[AxisDetail]{}, apperrors.New(apperrors.Validation, "level must be 1 or greater")
	}
	return api.Fetch[AxisDetail](ctx, h.c, "/axes/"+url.PathEscape(code)+"/answers",
		api.WithMethod(api.MethodPut), api.WithBody(req))
}

// DeepThread calls GET /deep_questions?axis=.
func (h *HTTP) DeepThread(ctx context.Context, axis string) (api.Result[DeepThread], error) {
	if err := requireValue("axis", axis); err != nil {
		return api.Result[DeepThread]{}, err
	}
	q := url.Values{"axis": {axis}}
	return api.Fetch[DeepThread](ctx, h.c, "/deep_questions?"+q.Encode())
}

// AskDeep posts a question to an axis thread.
func (h *HTTP) AskDeep(ctx context.Context, axis, question string) (api.Result[DeepThread], error) {
	if err := requireValue("axis", axis); err != nil {
		return api.Result[DeepThread]{}, err
	}
	if err := requireValue("question", question); err != nil {
		return api.Result[DeepThread]{}, err
	}
	return api.Fetch[DeepThread](ctx, h.c, "/deep_questions/messages",
		api.WithMethod(api.MethodPost),
		api.WithBody(DeepAskRequest{AxisCode: axis, Question: question}))
}

func deepDivePath(cardID string) string { return "/deep-dive/chat/" + url.PathEscape(cardID) }

// DeepDiveChat calls GET /deep-dive/chat/{card}.
func (h *HTTP) DeepDiveChat(ctx context.Context, cardID string) (api.Result[DeepDiveChat], error) {
	if err := requireValue("card id", cardID); err != nil {
		return api.Result[DeepDiveChat]{}, err
	}
	return api.Fetch[DeepDiveChat](ctx, h.c, deepDivePath(cardID))
}

// SendDeepDive posts a trimmed message to a deep-dive card.
func (h *HTTP) SendDeepDive(ctx context.Context, cardID, message string) (api.Result[DeepDiveChat], error) {
	if err := requireValue("card id", cardID); err != nil {
		return api.Result[DeepDiveChat]{}, err
	}
	message = strings.TrimSpace(message)
	if err := requireValue("message", message); err != nil {
		return api.Result[DeepDiveChat]{}, err
	}
	return api.Fetch[DeepDiveChat](ctx, h.c, deepDivePath(cardID),
		api.WithMethod(api.MethodPost),
		api.WithBody(map[string]string{"message": message}))
}

// CompleteDeepDive calls POST /deep-dive/card/{card}/complete without a body.
func (h *HTTP) CompleteDeepDive(ctx context.Context, cardID string) (api.Result[DeepDiveCompletion], error) {
	if err := requireValue("card id", cardID); err != nil {
		return api.Result[DeepDiveCompletion]{}, err
	}
	return api.Fetch[DeepDiveCompletion](ctx, h.c, "/deep-dive/card/"+url.PathEscape(cardID)+"/complete",
		api.WithMethod(api.MethodPost))
}

// CardStatuses calls GET /api/<topic>/status.
func (h *HTTP) CardStatuses(ctx context.Context, topic cards.Topic) (api.Result[CardStatusList], error) {
	return api.Fetch[CardStatusList](ctx, h.c, topic.StatusPath())
}

// CardChat posts one owner message with the prior history.
func (h *HTTP) CardChat(ctx context.Context, topic cards.Topic, req CardChatRequest) (api.Result[CardChatResponse], error) {
	if err := requireValue("card id", req.CardID); err != nil {
		return api.Result[CardChatResponse]{}, err
	}
	if err := requireValue("message", req.UserMessage); err != nil {
		return api.Result[CardChatResponse]{}, err
	}
	if req.History == nil {
		req.History = []cards.Message{}
	}
	return api.Fetch[CardChatResponse](ctx, h.c, topic.ChatPath(),
		api.WithMethod(api.MethodPost), api.WithBody(req))
}

// CardSummary asks the backend to summarize a card's transcript.
func (h *HTTP) CardSummary(ctx context.Context, topic cards.Topic, req CardSummaryRequest) (api.Result[CardSummaryResponse], error) {
	if err := requireValue("card id", req.CardID); err != nil {
		return api.Result[CardSummaryResponse]{}, err
	}
	if len(req.ChatHistory) == 0 {
		return api.Result[CardSummaryResponse]{}, apperrors.New(apperrors.Validation, "nothing to summarize yet")
	}
	return api.Fetch[CardSummaryResponse](ctx, h.c, topic.SummaryPath(),
		api.WithMethod(api.MethodPost), api.WithBody(req))
}
