// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package simulation models the twelve-question simple simulation: the question
// catalog, the owner's answers, the submission payload and the immediate result
// returned before advice starts streaming.
package simulation

import (
	"fmt"
	"slices"
	"strings"

	apperrors "restaurantai/cli/internal/errors"
)

// Kind tells whether a question takes one value or several.
type Kind int

const (
	Single Kind = iota
	Multi
)

func (k Kind) String() string {
	if k == Multi {
		return "multi"
	}
	return "single"
}

// Option is one selectable answer.
type Option struct {
	Value string
	Label string
	// Unknown marks the "not decided yet" choice; in a multi question it excludes the others.
	Unknown bool
}

// Question is one entry of the questionnaire.
type Question struct {
	ID      string
	Number  int
	Title   string
	Prompt  string
	Kind    Kind
	Options []Option
}

// Option returns the option with the given value.
func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// UnknownValue returns the value of the "not decided yet" option, or "".
func (q Question) UnknownValue() string {
	for _, o := range q.Options {
		if o.Unknown {
			return o.Value
		}
	}
	return ""
}

// Lookup finds a question by id ("q1") or by number ("1").
func Lookup(key string) (Question, bool) {
	key = strings.TrimSpace(key)
	for _, q := range Questions {
		if q.ID == key || fmt.Sprint(q.Number) == key {
			return q, true
		}
	}
	return Question{}, false
}

// Answers holds the selected values per question. The zero value is empty and usable.
type Answers struct {
	values map[string][]string
}

// Get returns a copy of the values selected for a question.
func (a *Answers) Get(id string) []string {
	return slices.Clone(a.values[id])
}

// Set replaces the values of a question after checking them against the catalog.
// An empty list clears the question.
func (a *Answers) Set(id string, values []string) error {
	q, ok := Lookup(id)
	if !ok {
		return apperrors.New(apperrors.Validation, fmt.Sprintf("unknown question %q", id))
	}
	values = dedupe(values)
	if q.Kind == Single && len(values) > 1 {
		return apperrors.New(apperrors.Validation, fmt.Sprintf("%s takes a single answer, got %d", q.ID, len(values)))
	}
	unknown := q.UnknownValue()
	for _, v := range values {
		if _, ok := q.Option(v); !ok {
			return apperrors.New(apperrors.Validation, fmt.Sprintf("%s has no option %q", q.ID, v))
		}
		if v == unknown && len(values) > 1 {
			return apperrors.New(apperrors.Validation, fmt.Sprintf("%s: %q cannot be combined with other answers", q.ID, v))
		}
	}
	if a.values == nil {
		a.values = make(map[string][]string, len(Questions))
	}
	if len(values) == 0 {
		delete(a.values, q.ID)
		return nil
	}
	a.values[q.ID] = values
	return nil
}

// Toggle flips one option the way the questionnaire screen does: a single question
// takes the value outright; in a multi question the unknown option clears the rest
// and any other option clears the unknown one.
func (a *Answers) Toggle(id, value string) error {
	q, ok := Lookup(id)
	if !ok {
		return apperrors.New(apperrors.Validation, fmt.Sprintf("unknown question %q", id))
	}
	opt, ok := q.Option(value)
	if !ok {
		return apperrors.New(apperrors.Validation, fmt.Sprintf("%s has no option %q", q.ID, value))
	}
	current := a.Get(q.ID)
	switch {
	case q.Kind == Single:
		return a.Set(q.ID, []string{value})
	case opt.Unknown:
		if slices.Contains(current, value) {
			return a.Set(q.ID, nil)
		}
		return a.Set(q.ID, []string{value})
	}
	unknown := q.UnknownValue()
	next := slices.DeleteFunc(current, func(v string) bool { return v == unknown })
	if i := slices.Index(next, value); i >= 0 {
		next = slices.Delete(next, i, i+1)
	} else {
		next = append(next, value)
	}
	return a.Set(q.ID, next)
}

// Reset clears every answer.
func (a *Answers) Reset() { a.values = nil }

// Answered reports how many questions have at least one value.
func (a *Answers) Answered() int { return len(a.values) }

// Missing lists unanswered question ids in catalog order.
func (a *Answers) Missing() []string {
	var out []string
	for _, q := range Questions {
		if len(a.values[q.ID]) == 0 {
			out = append(out, q.ID)
		}
	}
	return out
}

// Validate fails with a validation error naming every unanswered question.
func (a *Answers) Validate() error {
	if missing := a.Missing(); len(missing) > 0 {
		return apperrors.New(apperrors.Validation, "unanswered questions: "+strings.Join(missing, ", "))
	}
	return nil
}

// AnswerPayload is one answer as sent to the backend.
type AnswerPayload struct {
	QuestionCode string   `json:"question_code" yaml:"question_code"`
	Values       []string `json:"values" yaml:"values"`
}

// Payload returns the answered questions in catalog order.
func (a *Answers) Payload() []AnswerPayload {
	out := make([]AnswerPayload, 0, len(a.values))
	for _, q := range Questions {
		if v := a.values[q.ID]; len(v) > 0 {
			out = append(out, AnswerPayload{QuestionCode: q.ID, Values: slices.Clone(v)})
		}
	}
	return out
}

// FromPayload rebuilds Answers from a submitted payload.
func FromPayload(items []AnswerPayload) (Answers, error) {
	var a Answers
	for _, it := range items {
		if err := a.Set(it.QuestionCode, it.Values); err != nil {
			return Answers{}, err
		}
	}
	return a, nil
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
