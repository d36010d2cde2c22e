// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth signs the user in through the backend's Google flow.
// The backend issues the sign-in URL and redirects to the dashboard with an
// access token, which the user pastes back. The token and a small login state
// are kept in the OS keychain.
package auth

import (
	"context"
	"net/http"

	"restaurantai/cli/internal/backend"
	apperrors "restaurantai/cli/internal/errors"
)

// Store is the credential storage the service needs. keychain.Manager implements it.
type Store interface {
	StateStore
	AccessToken() (string, error)
	SetAccessToken(token string) error
	ClearAccessToken() error
}

// Service centralizes authentication operations against the backend and local storage.
// The backend client must read its bearer token from the same Store.
type Service struct {
	be    backend.API
	store Store
}

// NewService constructs a Service.
func NewService(be backend.API, store Store) *Service {
	return &Service{be: be, store: store}
}

// LoginURL asks the backend for the Google sign-in URL. allowCreate lets a new
// account be created from a pending guest simulation.
func (s *Service) LoginURL(ctx context.Context, allowCreate bool) (string, error) {
	res, err := s.be.GoogleAuthURL(ctx, allowCreate)
	if err != nil {
		return "", err
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	if res.Data.AuthURL == "" {
		return "", apperrors.WithStatus(apperrors.Decode, res.Status, "backend returned an empty sign-in URL")
	}
	return res.Data.AuthURL, nil
}

// Complete stores the token found in pasted and confirms it against the dashboard.
// A token the backend rejects is removed again.
func (s *Service) Complete(ctx context.Context, pasted string) (string, error) {
	token, err := ExtractToken(pasted)
	if err != nil {
		return "", err
	}
	if err := s.store.SetAccessToken(token); err != nil {
		return "", err
	}
	account, ok, err := s.WhoAmI(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.WithStatus(apperrors.HTTP, http.StatusUnauthorized, "the backend rejected the pasted token")
	}
	return account, nil
}

// WhoAmI validates the stored token and returns the account email.
// It reports false without error when no valid token exists; a 401 clears the token.
func (s *Service) WhoAmI(ctx context.Context) (string, bool, error) {
	token, err := s.store.AccessToken()
	if err != nil {
		return "", false, err
	}
	if token == "" {
		return "", false, nil
	}

	res, err := s.be.Dashboard(ctx)
	if err != nil {
		return "", false, err
	}
	if res.Status == http.StatusUnauthorized {
		return "", false, s.store.ClearAccessToken()
	}
	if err := res.Err(); err != nil {
		return "", false, err
	}

	account := res.Data.UserEmail
	if account == "" {
		account = "user"
	}
	if err := SaveState(s.store, State{LoggedIn: true, Account: account}); err != nil {
		return "", false, err
	}
	return account, true, nil
}

// Cached returns the last confirmed account without contacting the backend.
func (s *Service) Cached() (State, error) {
	return LoadState(s.store)
}

// Logout clears the token and the login state. The backend keeps no CLI session to revoke.
func (s *Service) Logout() error {
	if err := s.store.ClearAccessToken(); err != nil {
		return err
	}
	return s.store.ClearAuthState()
}
