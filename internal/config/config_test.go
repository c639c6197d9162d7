package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("LLM_PROVIDER", "Anthropic")
	t.Setenv("NEWS_API_KEY", "")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 0.3, cfg.LLM.Temperature)
	assert.Equal(t, 2000, cfg.LLM.MaxTokens)
	assert.Empty(t, cfg.News.APIKey)
	assert.True(t, cfg.News.MockOnError)
	assert.Equal(t, 16*1024*1024, cfg.MaxUploadBytes)
	assert.Equal(t, "concat", cfg.Extract.EmailBodyMode)
	assert.Equal(t, DefaultTriggerPhrases, cfg.Analysis.TriggerPhrases)
}

func TestLoad_ZeroTemperature(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "0")

	cfg := Load()

	assert.Equal(t, 0.0, cfg.LLM.Temperature)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	t.Setenv(key, "0.7")
	assert.Equal(t, 0.7, getEnvFloat(key, 0.3))

	t.Setenv(key, "nope")
	assert.Equal(t, 0.3, getEnvFloat(key, 0.3))
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_LIST_VAR"

	t.Setenv(key, " breach , ,force majeure ")
	assert.Equal(t, []string{"breach", "force majeure"}, getEnvList(key, nil))

	t.Setenv(key, " , ")
	assert.Equal(t, []string{"x"}, getEnvList(key, []string{"x"}))

	t.Setenv(key, "")
	assert.Equal(t, []string{"x"}, getEnvList(key, []string{"x"}))
}

func TestInitLogger(t *testing.T) {
	prev := zap.L()
	defer zap.ReplaceGlobals(prev)

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	err := InitLogger(LogConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
