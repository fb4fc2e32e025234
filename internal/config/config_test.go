package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.PlannerProvider)
	assert.Equal(t, "openai", cfg.LLM.ChatProvider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 10000, cfg.Planner.BudgetRates["middle"])
	assert.Equal(t, 5000, cfg.Planner.DefaultDailyRate)
	assert.Equal(t, 30, cfg.Planner.MaxTripDays)
	assert.Equal(t, "console", cfg.Mail.Backend)
	assert.Empty(t, cfg.LLM.GeminiAPIKey)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
llm:
  planner_provider: openai
  timeout: 10s
planner:
  cache_ttl: 5m
  max_trip_days: 14
  budget_rates:
    budget: 2500
    middle: 9000
    rich: 25000
mail:
  recipients: ["ops@ait.example"]
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7000")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CONTACT_RECIPIENTS", "a@ait.example, b@ait.example")
	t.Setenv("LLM_RPS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port, "env wins over file")
	assert.Equal(t, "openai", cfg.LLM.PlannerProvider)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 2, cfg.LLM.RequestsPerSecond)
	assert.Equal(t, 5*time.Minute, cfg.Planner.CacheTTL)
	assert.Equal(t, 9000, cfg.Planner.BudgetRates["middle"])
	assert.Equal(t, 14, cfg.Planner.MaxTripDays)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAIAPIKey)
	assert.Equal(t, []string{"a@ait.example", "b@ait.example"}, cfg.Mail.Recipients)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	t.Run("provider", func(t *testing.T) {
		t.Setenv("PLANNER_PROVIDER", "llama")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("duration", func(t *testing.T) {
		t.Setenv("LLM_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("max trip days", func(t *testing.T) {
		t.Setenv("PLANNER_MAX_TRIP_DAYS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("email backend", func(t *testing.T) {
		t.Setenv("EMAIL_BACKEND", "carrier-pigeon")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}
