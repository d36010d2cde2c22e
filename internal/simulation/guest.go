// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package simulation

import (
	"github.com/google/uuid"
)

// GuestStore persists the anonymous session token.
type GuestStore interface {
	GuestToken() (string, error)
	SetGuestToken(token string) error
}

// EnsureGuestToken returns the stored guest token, creating and storing a new UUID
// on first use.
func EnsureGuestToken(store GuestStore) (string, error) {
	tok, err := store.GuestToken()
	if err != nil {
		return "", err
	}
	if tok != "" {
		return tok, nil
	}
	tok = uuid.NewString()
	if err := store.SetGuestToken(tok); err != nil {
		return "", err
	}
	return tok, nil
}
