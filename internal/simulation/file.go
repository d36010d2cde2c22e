// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package simulation

import (
	"fmt"
	"os"

	apperrors "restaurantai/cli/internal/errors"

	"gopkg.in/yaml.v3"
)

// ParseAnswers reads answers from YAML or JSON. Three layouts are accepted:
//
//	q1: office_workers            # question id to value(s)
//	q6: [ramen, izakaya]
//
//	answers:                      # the request body
//	  - {question_code: q1, values: [office_workers]}
//
//	- {question_code: q1, values: [office_workers]}
func ParseAnswers(data []byte) (Answers, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Answers{}, apperrors.Wrap(apperrors.Validation, "parse answers", err)
	}
	if len(root.Content) == 0 {
		return Answers{}, apperrors.New(apperrors.Validation, "answers file is empty")
	}
	doc := root.Content[0]

	switch doc.Kind {
	case yaml.SequenceNode:
		var items []AnswerPayload
		if err := doc.Decode(&items); err != nil {
			return Answers{}, apperrors.Wrap(apperrors.Validation, "parse answers", err)
		}
		return FromPayload(items)
	case yaml.MappingNode:
		var req struct {
			Answers []AnswerPayload `yaml:"answers"`
		}
		if hasKey(doc, "answers") {
			if err := doc.Decode(&req); err != nil {
				return Answers{}, apperrors.Wrap(apperrors.Validation, "parse answers", err)
			}
			return FromPayload(req.Answers)
		}
		return decodeByID(doc)
	}
	return Answers{}, apperrors.New(apperrors.Validation, "answers must be a mapping or a list")
}

// LoadAnswersFile reads and parses an answers file.
func LoadAnswersFile(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Answers{}, err
	}
	return ParseAnswers(data)
}

func hasKey(m *yaml.Node, key string) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return true
		}
	}
	return false
}

func decodeByID(m *yaml.Node) (Answers, error) {
	var a Answers
	for i := 0; i+1 < len(m.Content); i += 2 {
		id, val := m.Content[i].Value, m.Content[i+1]
		var values []string
		switch val.Kind {
		case yaml.ScalarNode:
			values = []string{val.Value}
		case yaml.SequenceNode:
			if err := val.Decode(&values); err != nil {
				return Answers{}, apperrors.Wrap(apperrors.Validation, fmt.Sprintf("parse %s", id), err)
			}
		default:
			return Answers{}, apperrors.New(apperrors.Validation, fmt.Sprintf("%s: expected a value or a list", id))
		}
		if err := a.Set(id, values); err != nil {
			return Answers{}, err
		}
	}
	return a, nil
}
