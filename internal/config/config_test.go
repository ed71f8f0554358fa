package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bos-com/Recipe-management-System/internal/store"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SLOT_BACKEND", "")
	t.Setenv("COLLECTION_SCOPE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "file", cfg.SlotBackend)
	assert.Equal(t, RecipeSourceSample, cfg.RecipeSource)
	assert.Equal(t, store.ScopeDevice, cfg.CollectionScope)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SLOT_BACKEND", "Redis")
	t.Setenv("COLLECTION_SCOPE", "user")
	t.Setenv("ADMIN_EMAILS", "a@example.com, ,b@example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REVIEW_RATE_MAX", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.SlotBackend)
	assert.Equal(t, store.ScopeUser, cfg.CollectionScope)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.AdminEmails)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 5, cfg.ReviewRateMax)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SLOT_BACKEND", "floppy")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("SLOT_BACKEND", "memory")
	t.Setenv("COLLECTION_SCOPE", "galaxy")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveLimits(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"REVIEW_RATE_WINDOW", "0s"},
		{"REVIEW_RATE_WINDOW", "-1m"},
		{"REVIEW_RATE_MAX", "0"},
		{"REVIEW_RATE_MAX", "-3"},
		{"RATE_LIMIT_RPS", "0"},
		{"RATE_LIMIT_RPS", "-0.5"},
		{"RATE_LIMIT_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "s3cret")
			t.Setenv("SLOT_BACKEND", "memory")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config: "+tt.key)
		})
	}
}
