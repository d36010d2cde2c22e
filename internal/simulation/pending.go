// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package simulation

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"restaurantai/cli/internal/xdg"
)

const pendingFile = "pending_simple_simulation.json"

// Pending is a finished simulation kept until the owner creates an account.
type Pending struct {
	Request
	SessionID int64     `json:"session_id,omitempty"`
	SavedAt   time.Time `json:"saved_at"`
}

func pendingPath() (string, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, pendingFile), nil
}

// SavePending writes p to the state directory, replacing any earlier draft.
func SavePending(p Pending) error {
	path, err := pendingPath()
	if err != nil {
		return err
	}
	if p.SavedAt.IsZero() {
		p.SavedAt = time.Now().UTC()
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// LoadPending returns the saved draft; ok is false when none exists.
func LoadPending() (p Pending, ok bool, err error) {
	path, err := pendingPath()
	if err != nil {
		return p, false, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, false, nil
		}
		return p, false, err
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, false, err
	}
	return p, true, nil
}

// ClearPending removes the saved draft if any.
func ClearPending() error {
	path, err := pendingPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
