// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"encoding/json"
	"fmt"

	"restaurantai/cli/internal/cards"
)

// AuthURL is the GET /auth/google/url response.
type AuthURL struct {
	AuthURL string `json:"auth_url"`
}

// AxisRef names an axis.
type AxisRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// AxisList is the GET /axes response.
type AxisList struct {
	Axes []AxisRef `json:"axes"`
}

// AxisDetail is one axis with the owner's recorded answers, keyed "level_1", "level_2".
type AxisDetail struct {
	Code     string                     `json:"code"`
	Name     string                     `json:"name"`
	Score    float64                    `json:"score"`
	Answers  map[string]json.RawMessage `json:"answers"`
	Feedback string                     `json:"feedback"`
}

// AxisAnswersRequest is the PUT /axes/{code}/answers body.
type AxisAnswersRequest struct {
	Level   int             `json:"level"`
	Answers json.RawMessage `json:"answers"`
}

// LevelKey returns the answers key for a level.
func LevelKey(level int) string { return fmt.Sprintf("level_%d", level) }

// LevelRequest builds the save request for level from the answers already on d.
// A level without answers sends an empty object.
func (d AxisDetail) LevelRequest(level int) AxisAnswersRequest {
	answers, ok := d.Answers[LevelKey(level)]
	if !ok || len(answers) == 0 || string(answers) == "null" {
		answers = json.RawMessage(`{}`)
	}
	return AxisAnswersRequest{Level: level, Answers: answers}
}

// DeepMessage is one turn of an axis deep-question thread.
type DeepMessage struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// DeepThread is the deep-question history of one axis.
type DeepThread struct {
	AxisCode string        `json:"axis_code"`
	AxisName string        `json:"axis_name"`
	Messages []DeepMessage `json:"messages"`
}

// DeepAskRequest is the POST /deep_questions/messages body.
type DeepAskRequest struct {
	AxisCode string `json:"axis_code"`
	Question string `json:"question"`
}

// DeepDiveMessage is one turn of a deep-dive card chat.
type DeepDiveMessage struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// DeepDiveChat is the chat state of one deep-dive card.
type DeepDiveChat struct {
	CardID          string            `json:"card_id"`
	CardTitle       string            `json:"card_title"`
	InitialQuestion string            `json:"initial_question"`
	Messages        []DeepDiveMessage `json:"messages"`
	Status          string            `json:"status,omitempty"`
	Summary         *string           `json:"summary,omitempty"`
}

// DeepDiveCompletion is returned when a card is marked complete.
type DeepDiveCompletion struct {
	CardID  string  `json:"card_id"`
	Status  string  `json:"status"`
	Summary *string `json:"summary"`
}

// CardStatus is the progress of one topic card.
type CardStatus struct {
	CardID      string          `json:"card_id"`
	IsCompleted bool            `json:"is_completed"`
	Summary     *string         `json:"summary"`
	ChatHistory []cards.Message `json:"chat_history"`
}

// CardStatusList is the GET /api/<topic>/status response.
type CardStatusList struct {
	Statuses []CardStatus `json:"statuses"`
}

// ByID indexes the statuses by card id.
func (l CardStatusList) ByID() map[string]CardStatus {
	out := make(map[string]CardStatus, len(l.Statuses))
	for _, s := range l.Statuses {
		out[s.CardID] = s
	}
	return out
}

// CardChatRequest is the POST /api/<topic>/chat body. History excludes UserMessage.
type CardChatRequest struct {
	CardID      string          `json:"card_id"`
	UserMessage string          `json:"user_message"`
	History     []cards.Message `json:"history"`
}

type CardChatResponse struct {
	AssistantMessage string          `json:"assistant_message"`
	History          []cards.Message `json:"history"`
}

// CardSummaryRequest is the POST /api/<topic>/summary body.
type CardSummaryRequest struct {
	CardID      string          `json:"card_id"`
	ChatHistory []cards.Message `json:"chat_history"`
}

type CardSummaryResponse struct {
	Summary string `json:"summary"`
}
