// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides thread-safe secret storage for the restaurantai CLI.
// Tokens are kept in the OS credential store (macOS Keychain, Windows Credential
// Manager, Secret Service or KWallet on Linux) with an encrypted file fallback under
// the XDG state directory when no native store is reachable.
//
// A Manager satisfies api.TokenProvider, so the HTTP gateway reads and clears the
// bearer token through it.
package keychain

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"restaurantai/cli/internal/xdg"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain namespace.
const ServiceName = "restaurantai"

// EnvFilePassword unlocks the file fallback without prompting.
const EnvFilePassword = "RESTAURANTAI_KEYRING_PASSWORD"

// Keys used for storing secrets.
const (
	KeyAccessToken = "auth_access_token"
	KeyAuthState   = "auth_state"
	KeyGuestToken  = "guest_session_token"
)

var (
	globalManager *Manager
	globalMu      sync.Mutex
)

// Manager serializes access to a keyring.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager opens the platform keyring.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithRing wraps an already opened keyring, e.g. keyring.NewArrayKeyring.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the process-wide Manager, opening it on first use.
// A failed open is retried on the next call.
func GetManager() (*Manager, error) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalManager != nil {
		return globalManager, nil
	}
	m, err := NewManager()
	if err != nil {
		return nil, err
	}
	globalManager = m
	return m, nil
}

// SetManager replaces the process-wide Manager and returns a func restoring the previous one.
func SetManager(m *Manager) (restore func()) {
	globalMu.Lock()
	prev := globalManager
	globalManager = m
	globalMu.Unlock()
	return func() {
		globalMu.Lock()
		globalManager = prev
		globalMu.Unlock()
	}
}

func allowedBackends() []keyring.BackendType {
	switch runtime.GOOS {
	case "darwin":
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend, keyring.FileBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend, keyring.FileBackend}
	default:
		return []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.KeyCtlBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	}
}

func openRing() (keyring.Keyring, error) {
	stateDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	cfg := keyring.Config{
		ServiceName:              ServiceName,
		AllowedBackends:          allowedBackends(),
		KeychainTrustApplication: true,
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		KeyCtlScope:              "user",
		LibSecretCollectionName:  ServiceName,
		KWalletAppID:             ServiceName,
		KWalletFolder:            ServiceName,
		FileDir:                  filepath.Join(stateDir, "keyring"),
		FilePasswordFunc:         filePassword,
	}
	return keyring.Open(cfg)
}

func filePassword(prompt string) (string, error) {
	if pw := os.Getenv(EnvFilePassword); pw != "" {
		return pw, nil
	}
	return keyring.TerminalPrompt(prompt)
}

// get returns "" without error when key is absent.
func (m *Manager) get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, err := m.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(it.Data), nil
}

func (m *Manager) set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{Key: key, Data: []byte(value), Label: ServiceName + " " + key})
}

func (m *Manager) remove(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var errs []error
	for _, k := range keys {
		if err := m.ring.Remove(k); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AccessToken returns the stored bearer token, or "" when logged out.
func (m *Manager) AccessToken() (string, error) { return m.get(KeyAccessToken) }

// SetAccessToken stores the bearer token. An empty token clears it.
func (m *Manager) SetAccessToken(token string) error {
	if token == "" {
		return m.remove(KeyAccessToken)
	}
	return m.set(KeyAccessToken, token)
}

// ClearAccessToken removes the bearer token and the auth state tied to it.
func (m *Manager) ClearAccessToken() error { return m.remove(KeyAccessToken, KeyAuthState) }

// SaveAuthState stores serialized auth state.
func (m *Manager) SaveAuthState(data []byte) error { return m.set(KeyAuthState, string(data)) }

// LoadAuthState returns serialized auth state; nil when none is stored.
func (m *Manager) LoadAuthState() ([]byte, error) {
	s, err := m.get(KeyAuthState)
	if err != nil || s == "" {
		return nil, err
	}
	return []byte(s), nil
}

// ClearAuthState removes the auth state only.
func (m *Manager) ClearAuthState() error { return m.remove(KeyAuthState) }

// GuestToken returns the anonymous simulation token, or "".
func (m *Manager) GuestToken() (string, error) { return m.get(KeyGuestToken) }

// SetGuestToken stores the anonymous simulation token.
func (m *Manager) SetGuestToken(token string) error { return m.set(KeyGuestToken, token) }

// ClearGuestToken forgets the anonymous simulation token.
func (m *Manager) ClearGuestToken() error { return m.remove(KeyGuestToken) }

// ClearAll removes every secret the CLI stores.
func (m *Manager) ClearAll() error {
	return m.remove(KeyAccessToken, KeyAuthState, KeyGuestToken)
}
