package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"servicehub-backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_PUBLISHABLE_KEY", "publishable-key")
	t.Setenv("SUPABASE_JWT_SECRET", "jwt-secret")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "attachments", cfg.SupabaseStorageBucket)
	assert.Equal(t, 10, cfg.MaxProposalsPerPost)
	assert.Equal(t, 5, cfg.QuoteFanoutSize)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_MissingSupabaseURL(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_PUBLISHABLE_KEY", "publishable-key")
	t.Setenv("SUPABASE_JWT_SECRET", "jwt-secret")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_PUBLISHABLE_KEY", "publishable-key")
	t.Setenv("SUPABASE_JWT_SECRET", "jwt-secret")
	t.Setenv("MAX_PROPOSALS_PER_POST", "25")
	t.Setenv("QUOTE_FANOUT_SIZE", "3")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, 25, cfg.MaxProposalsPerPost)
	assert.Equal(t, 3, cfg.QuoteFanoutSize)
	assert.Equal(t, "production", cfg.Environment)
}

func TestValidate_RejectsNonPositiveLimits(t *testing.T) {
	cfg := &config.Config{
		SupabaseURL:            "https://example.supabase.co",
		SupabasePublishableKey: "publishable-key",
		SupabaseJWTSecret:      "jwt-secret",
		MaxProposalsPerPost:    0,
		QuoteFanoutSize:        5,
	}
	assert.Error(t, cfg.Validate())

	cfg.MaxProposalsPerPost = 10
	cfg.QuoteFanoutSize = -1
	assert.Error(t, cfg.Validate())
}
