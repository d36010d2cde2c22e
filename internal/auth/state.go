// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"encoding/json"

	apperrors "restaurantai/cli/internal/errors"
)

// State is the persisted login state of the current user.
type State struct {
	LoggedIn bool   `json:"logged_in"`
	Account  string `json:"account"`
}

// StateStore persists the serialized State next to the access token.
type StateStore interface {
	SaveAuthState(data []byte) error
	LoadAuthState() ([]byte, error)
	ClearAuthState() error
}

// LoadState reads the state from s. Missing state yields the zero value.
func LoadState(s StateStore) (State, error) {
	var st State
	data, err := s.LoadAuthState()
	if err != nil {
		return st, err
	}
	if len(data) == 0 {
		return st, nil
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, apperrors.Wrap(apperrors.Decode, "stored auth state is corrupt", err)
	}
	return st, nil
}

// SaveState writes st to s.
func SaveState(s StateStore, st State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.SaveAuthState(b)
}
