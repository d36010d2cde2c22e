// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend names every route of the planning backend the CLI uses and types
// its request and response bodies. All calls go through the api gateway, so each
// method returns an api.Result and fails only on validation or transport errors.
package backend

import (
	"context"

	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/cards"
	"restaurantai/cli/internal/dashboard"
	"restaurantai/cli/internal/simulation"
)

// API defines backend operations the CLI depends on.
// Implementations may call the real backend or provide fakes for tests.
type API interface {
	// GoogleAuthURL returns the Google sign-in address. allowCreate permits
	// creating an account from a pending simulation.
	GoogleAuthURL(ctx context.Context, allowCreate bool) (api.Result[AuthURL], error)
	Dashboard(ctx context.Context) (api.Result[dashboard.Dashboard], error)

	SubmitSimulation(ctx context.Context, req simulation.Request) (api.Result[simulation.ImmediateResult], error)

	Axes(ctx context.Context) (api.Result[AxisList], error)
	Axis(ctx context.Context, code string) (api.Result[AxisDetail], error)
	SaveAxisLevel(ctx context.Context, code string, req AxisAnswersRequest) (api.Result[AxisDetail], error)

	DeepThread(ctx context.Context, axis string) (api.Result[DeepThread], error)
	AskDeep(ctx context.Context, axis, question string) (api.Result[DeepThread], error)

	DeepDiveChat(ctx context.Context, cardID string) (api.Result[DeepDiveChat], error)
	SendDeepDive(ctx context.Context, cardID, message string) (api.Result[DeepDiveChat], error)
	CompleteDeepDive(ctx context.Context, cardID string) (api.Result[DeepDiveCompletion], error)

	CardStatuses(ctx context.Context, topic cards.Topic) (api.Result[CardStatusList], error)
	CardChat(ctx context.Context, topic cards.Topic, req CardChatRequest) (api.Result[CardChatResponse], error)
	CardSummary(ctx context.Context, topic cards.Topic, req CardSummaryRequest) (api.Result[CardSummaryResponse], error)
}
