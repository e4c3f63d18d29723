package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CONTENT_DIR", "")
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("VERBOSE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, "public", cfg.ContentDir)
	assert.Equal(t, "leapsychology-legal", cfg.ServiceName)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CONTENT_DIR", "/srv/legal")
	t.Setenv("SERVICE_NAME", "legal-pages")
	t.Setenv("VERBOSE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Address())
	assert.Equal(t, "/srv/legal", cfg.ContentDir)
	assert.Equal(t, "legal-pages", cfg.ServiceName)
	assert.True(t, cfg.Verbose)
}

func TestLoadRejectsBadPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "not a number", port: "eighty"},
		{name: "zero", port: "0"},
		{name: "negative", port: "-1"},
		{name: "too large", port: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParsePortTrimsWhitespace(t *testing.T) {
	port, err := parsePort(" 9090 ")
	require.NoError(t, err)
	assert.Equal(t, 9090, port)
}

func TestGetFallsBackToDefaults(t *testing.T) {
	t.Setenv("PORT", "bogus")
	globalConfig = nil
	t.Cleanup(func() { globalConfig = nil })

	cfg := Get()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "public", cfg.ContentDir)
}
