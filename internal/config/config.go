// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; tokens go to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"restaurantai/cli/internal/xdg"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is used when nothing else names the backend.
const DefaultEndpoint = "http://localhost:8000"

// Environment variables consulted for the endpoint, highest priority first.
const (
	EnvEndpoint       = "RESTAURANTAI_API_ENDPOINT"
	EnvPublicEndpoint = "NEXT_PUBLIC_API_ENDPOINT"
	EnvLogLevel       = "RESTAURANTAI_LOG_LEVEL"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	APIEndpoint string `json:"api_endpoint,omitempty"`
	LogLevel    string `json:"log_level,omitempty"`
}

// Source names where a resolved value came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceFile    Source = "config"
	SourceDefault Source = "default"
)

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults.
func Load() (Config, error) {
	c := Config{LogLevel: "warn"}
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, append(b, '\n'), 0o600)
}

// LoadEnv reads .env.local then .env from dir into the process environment.
// Variables already set are never overwritten, so .env.local wins over .env.
// Missing files are ignored.
func LoadEnv(dir string) error {
	for _, name := range []string{".env.local", ".env"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ResolveEndpoint picks the API endpoint: flag, then environment, then the config
// file, then DefaultEndpoint. The result has no trailing slash.
func ResolveEndpoint(flag string, c Config) (string, Source, error) {
	candidates := []struct {
		value  string
		source Source
	}{
		{flag, SourceFlag},
		{os.Getenv(EnvEndpoint), SourceEnv},
		{os.Getenv(EnvPublicEndpoint), SourceEnv},
		{c.APIEndpoint, SourceFile},
		{DefaultEndpoint, SourceDefault},
	}
	for _, cand := range candidates {
		v := strings.TrimSpace(cand.value)
		if v == "" {
			continue
		}
		norm, err := NormalizeEndpoint(v)
		if err != nil {
			return "", cand.source, fmt.Errorf("invalid API endpoint from %s: %w", cand.source, err)
		}
		return norm, cand.source, nil
	}
	return DefaultEndpoint, SourceDefault, nil
}

// ResolveLogLevel prefers the environment over the config file.
func ResolveLogLevel(c Config) string {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		return v
	}
	return c.LogLevel
}

// NormalizeEndpoint checks that raw is an absolute http(s) URL and strips any
// trailing slash.
func NormalizeEndpoint(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%q: missing host", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%q: query and fragment are not allowed", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}
