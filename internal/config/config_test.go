package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.False(t, bool(cfg.Debug))
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("HTTP_IDLE_TIMEOUT", "2m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example,http://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, 2*time.Minute, cfg.HTTP.IdleTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestDebugParsing(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"True":  true,
		"tRuE":  true,
		"false": false,
		"1":     false,
		"yes":   false,
		"":      false,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("DEBUG", raw)
			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, want, bool(cfg.Debug))
		})
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PORT", "not-a-number")
	_, err = Load()
	assert.Error(t, err)
}
