package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bura/internal/submission"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	prev := lookupEnv
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	t.Cleanup(func() { lookupEnv = prev })
}

func TestLoad_Defaults(t *testing.T) {
	withEnv(t, map[string]string{})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.StoreConfigured())
	assert.Equal(t, "254746110624", cfg.CoachWhatsApp)
	assert.Equal(t, "https://wa.me", cfg.WhatsAppBaseURL)
	assert.Equal(t, submission.FailOpen, cfg.FailurePolicy)
	assert.Equal(t, "http://localhost:8080", cfg.SubmitAPIURL)
	assert.False(t, cfg.ReturnPlanSlug)
	assert.Equal(t, 5*time.Minute, cfg.HandoffTTL)
	assert.Equal(t, 1024, cfg.HandoffCapacity)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Empty(t, cfg.LeadsToken)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	withEnv(t, map[string]string{
		"ENV":                   "Staging",
		"PORT":                  "9090",
		"DATABASE_URL":          "postgres://u:p@db:5432/bura",
		"COACH_WHATSAPP":        "+254700000001",
		"WHATSAPP_BASE_URL":     "https://wa.me/",
		"SUBMIT_FAILURE_POLICY": "FAIL_CLOSED",
		"RETURN_PLAN_SLUG":      "yes",
		"HANDOFF_TTL":           "90s",
		"HANDOFF_CAPACITY":      "10",
		"CORS_ALLOWED_ORIGINS":  "https://bura.fit, ,https://www.bura.fit",
		"LEADS_EXPORT_TOKEN":    "s3cret",
		"LOG_LEVEL":             "DEBUG",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.AppEnv)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.StoreConfigured())
	assert.Equal(t, "254700000001", cfg.CoachWhatsApp)
	assert.Equal(t, "https://wa.me", cfg.WhatsAppBaseURL)
	assert.Equal(t, submission.FailClosed, cfg.FailurePolicy)
	assert.True(t, cfg.ReturnPlanSlug)
	assert.Equal(t, 90*time.Second, cfg.HandoffTTL)
	assert.Equal(t, 10, cfg.HandoffCapacity)
	assert.Equal(t, []string{"https://bura.fit", "https://www.bura.fit"}, cfg.CORSOrigins)
	assert.Equal(t, "s3cret", cfg.LeadsToken)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_AppEnvWinsOverEnv(t *testing.T) {
	withEnv(t, map[string]string{"APP_ENV": "dev", "ENV": "production"})
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.False(t, cfg.IsProdLike())
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"policy":          {"SUBMIT_FAILURE_POLICY": "retry"},
		"ttl":             {"HANDOFF_TTL": "0s"},
		"ttl unparsable":  {"HANDOFF_TTL": "soon"},
		"capacity":        {"HANDOFF_CAPACITY": "-1"},
		"port":            {"PORT": "http"},
		"recipient":       {"COACH_WHATSAPP": "coach"},
		"base url":        {"WHATSAPP_BASE_URL": "wa.me"},
		"api url":         {"SUBMIT_API_URL": "ftp://host"},
		"log level":       {"LOG_LEVEL": "verbose"},
		"prod plain http": {"APP_ENV": "release", "DATABASE_URL": "bura.db", "WHATSAPP_BASE_URL": "http://wa.me"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			withEnv(t, env)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ProdWithDatabase(t *testing.T) {
	withEnv(t, map[string]string{"APP_ENV": "prod", "DATABASE_URL": "postgres://db/bura"})
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProdLike())
	assert.NoError(t, cfg.RequireStore())
}

func TestRequireStore(t *testing.T) {
	// The quiz client loads the same config and never needs a database.
	withEnv(t, map[string]string{"APP_ENV": "production"})
	cfg, err := Load()
	require.NoError(t, err)
	assert.Error(t, cfg.RequireStore())

	withEnv(t, map[string]string{"APP_ENV": "dev"})
	cfg, err = Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.RequireStore())
}
