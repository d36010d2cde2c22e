// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import "sync"

// TokenProvider is the ambient bearer-token store. The Gateway only reads from it;
// call sites write on login and clear on 401.
type TokenProvider interface {
	AccessToken() (string, error)
	SetAccessToken(token string) error
	ClearAccessToken() error
}

// MemoryTokens is an in-process TokenProvider with last-write-wins semantics.
type MemoryTokens struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokens returns a provider preloaded with token (which may be empty).
func NewMemoryTokens(token string) *MemoryTokens {
	return &MemoryTokens{token: token}
}

// AccessToken returns the current token, or "" when none is set.
func (m *MemoryTokens) AccessToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

// SetAccessToken replaces the current token.
func (m *MemoryTokens) SetAccessToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// ClearAccessToken forgets the current token.
func (m *MemoryTokens) ClearAccessToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
