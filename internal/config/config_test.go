package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MESSENGER_APP_SECRET", "secret")
	t.Setenv("MESSENGER_VERIFY_TOKEN", "token")
	t.Setenv("MESSENGER_PAGE_ACCESS_TOKEN", "page-token")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.AppSecret)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://graph.facebook.com/v2.6", cfg.GraphAPIBaseURL)
	assert.Equal(t, SendRequest, cfg.Bot.SendTimeout)
	assert.Equal(t, 100, cfg.Bot.MaxEventsPerWebhook)
	assert.Equal(t, 3, cfg.Bot.ProductCardCount)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("SEND_TIMEOUT", "5s")
	t.Setenv("PRODUCT_CARD_COUNT", "7")
	t.Setenv("MESSENGER_GRAPH_API_URL", "http://localhost:1234")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Bot.SendTimeout)
	assert.Equal(t, 7, cfg.Bot.ProductCardCount)
	assert.Equal(t, "http://localhost:1234", cfg.GraphAPIBaseURL)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("MESSENGER_APP_SECRET", "")
	t.Setenv("MESSENGER_VERIFY_TOKEN", "")
	t.Setenv("MESSENGER_PAGE_ACCESS_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MESSENGER_APP_SECRET is required")
	assert.Contains(t, err.Error(), "MESSENGER_VERIFY_TOKEN is required")
	assert.Contains(t, err.Error(), "MESSENGER_PAGE_ACCESS_TOKEN is required")
}

func TestBotConfigValidate(t *testing.T) {
	t.Parallel()
	bad := BotConfig{SendTimeout: -time.Second, MaxEventsPerWebhook: 0, ProductCardCount: 0}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEND_TIMEOUT")
	assert.Contains(t, err.Error(), "MAX_EVENTS_PER_WEBHOOK")
	assert.Contains(t, err.Error(), "PRODUCT_CARD_COUNT")

	good := BotConfig{SendTimeout: time.Second, MaxEventsPerWebhook: 10, ProductCardCount: 3}
	assert.NoError(t, good.Validate())
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SEND_TIMEOUT", "not-a-duration")
	t.Setenv("MAX_EVENTS_PER_WEBHOOK", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SendRequest, cfg.Bot.SendTimeout)
	assert.Equal(t, 100, cfg.Bot.MaxEventsPerWebhook)
}
