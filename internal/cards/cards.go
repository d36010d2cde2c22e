// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cards holds the topic card catalogs and the chat transcript kept while
// the owner works through one card with the assistant.
package cards

import (
	"errors"
	"strings"
)

// Card is one guided question within a topic.
type Card struct {
	ID    string
	Title string
	// Step groups cards into the three phases (1..3) of a topic.
	Step int
	// Opening is the assistant's first message when no history exists.
	Opening string
}

// Topic is a card deck served under /api/<slug>.
type Topic struct {
	Slug  string
	Label string
	cards []Card
}

// Topics lists every deck in display order.
var Topics = []Topic{
	{Slug: "concept", Label: "コンセプト", cards: conceptCards},
	{Slug: "menu", Label: "メニュー", cards: menuCards},
	{Slug: "funding-plan", Label: "資金計画", cards: fundingPlanCards},
	{Slug: "interior-exterior", Label: "内装・外装", cards: interiorExteriorCards},
	{Slug: "revenue-forecast", Label: "収支予測", cards: revenueForecastCards},
}

// ErrUnknownTopic is returned for a slug outside Topics.
var ErrUnknownTopic = errors.New("unknown card topic")

// Lookup resolves a topic slug. Underscores are accepted in place of hyphens.
func Lookup(slug string) (Topic, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(slug)), "_", "-")
	for _, t := range Topics {
		if t.Slug == norm {
			return t, nil
		}
	}
	return Topic{}, ErrUnknownTopic
}

// Slugs returns every topic slug.
func Slugs() []string {
	out := make([]string, len(Topics))
	for i, t := range Topics {
		out[i] = t.Slug
	}
	return out
}

// Cards returns the deck in order.
func (t Topic) Cards() []Card {
	return append([]Card(nil), t.cards...)
}

// Card finds a card by id.
func (t Topic) Card(id string) (Card, bool) {
	for _, c := range t.cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// StatusPath is the route reporting per-card progress for the topic.
func (t Topic) StatusPath() string { return "/api/" + t.Slug + "/status" }

func (t Topic) ChatPath() string { return "/api/" + t.Slug + "/chat" }

func (t Topic) SummaryPath() string { return "/api/" + t.Slug + "/summary" }

// Roles used in chat history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn as exchanged with the backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrEmptyMessage is returned when the owner sends only whitespace.
var ErrEmptyMessage = errors.New("message is empty")

// ErrEmptyReply is returned when the assistant answers with nothing.
var ErrEmptyReply = errors.New("assistant reply was empty")

// Conversation is the running transcript of a single card.
type Conversation struct {
	Topic    Topic
	Card     Card
	messages []Message
}

// NewConversation resumes from history, or opens with the card's first question.
func NewConversation(t Topic, c Card, history []Message) *Conversation {
	conv := &Conversation{Topic: t, Card: c}
	if len(history) > 0 {
		conv.messages = append(conv.messages, history...)
	} else if c.Opening != "" {
		conv.messages = []Message{{Role: RoleAssistant, Content: c.Opening}}
	}
	return conv
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []Message {
	return append([]Message(nil), c.messages...)
}

// Len reports the number of turns.
func (c *Conversation) Len() int { return len(c.messages) }

// Send posts text through exchange, which receives the history before this turn and
// returns the assistant reply. The transcript only grows when the exchange succeeds.
func (c *Conversation) Send(text string, exchange func(userMessage string, history []Message) (string, error)) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}
	reply, err := exchange(text, c.Messages())
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", ErrEmptyReply
	}
	c.messages = append(c.messages,
		Message{Role: RoleUser, Content: text},
		Message{Role: RoleAssistant, Content: reply},
	)
	return reply, nil
}
