// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvPublicEndpoint, "")
	t.Setenv(EnvLogLevel, "")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	isolate(t)
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Empty(t, c.APIEndpoint)
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(Config{APIEndpoint: "https://api.example.com", LogLevel: "debug"}))

	p, err := Path()
	require.NoError(t, err)
	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", c.APIEndpoint)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	isolate(t)
	p, err := Path()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o600))
	_, err = Load()
	assert.Error(t, err)
}

func TestResolveEndpointPrecedence(t *testing.T) {
	file := Config{APIEndpoint: "http://file.example:9000/"}

	tests := []struct {
		name       string
		flag       string
		env        string
		publicEnv  string
		cfg        Config
		want       string
		wantSource Source
	}{
		{"default", "", "", "", Config{}, DefaultEndpoint, SourceDefault},
		{"config file", "", "", "", file, "http://file.example:9000", SourceFile},
		{"public env beats file", "", "", "http://public.example", file, "http://public.example", SourceEnv},
		{"own env beats public env", "", "http://own.example", "http://public.example", file, "http://own.example", SourceEnv},
		{"flag beats all", "https://flag.example/api/", "http://own.example", "", file, "https://flag.example/api", SourceFlag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(EnvEndpoint, tt.env)
			t.Setenv(EnvPublicEndpoint, tt.publicEnv)
			got, src, err := ResolveEndpoint(tt.flag, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, src)
		})
	}
}

func TestResolveEndpointRejectsBadURL(t *testing.T) {
	isolate(t)
	_, src, err := ResolveEndpoint("ftp://nope", Config{})
	require.Error(t, err)
	assert.Equal(t, SourceFlag, src)

	for _, raw := range []string{"localhost:8000", "http://", "http://h/?a=1"} {
		_, err := NormalizeEndpoint(raw)
		assert.Error(t, err, raw)
	}
}

func TestLoadEnvPrefersLocal(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvEndpoint+"=http://from-env\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte(EnvEndpoint+"=http://from-local\n"), 0o600))
	require.NoError(t, os.Unsetenv(EnvEndpoint))

	require.NoError(t, LoadEnv(dir))
	assert.Equal(t, "http://from-local", os.Getenv(EnvEndpoint))
}

func TestLoadEnvKeepsExistingVariables(t *testing.T) {
	isolate(t)
	t.Setenv(EnvPublicEndpoint, "http://already-set")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvPublicEndpoint+"=http://file\n"), 0o600))

	require.NoError(t, LoadEnv(dir))
	assert.Equal(t, "http://already-set", os.Getenv(EnvPublicEndpoint))
}

func TestLoadEnvMissingFilesIgnored(t *testing.T) {
	isolate(t)
	assert.NoError(t, LoadEnv(t.TempDir()))
}

func TestResolveLogLevel(t *testing.T) {
	isolate(t)
	assert.Equal(t, "info", ResolveLogLevel(Config{LogLevel: "info"}))
	t.Setenv(EnvLogLevel, "trace")
	assert.Equal(t, "trace", ResolveLogLevel(Config{LogLevel: "info"}))
}
