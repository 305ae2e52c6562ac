package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.EnableTLS)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
	assert.True(t, cfg.IsLocal())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "ships.example.com")
	t.Setenv("ENABLE_TLS", "true")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://ships.example.com", cfg.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.IsProd())
}

func TestConfig_BaseURL_KeepsScheme(t *testing.T) {
	cfg := &Config{ServerAddress: "http://127.0.0.1:9000/", EnableTLS: true}
	assert.Equal(t, "http://127.0.0.1:9000", cfg.BaseURL())
}

func TestLoad_RejectsEmptyServer(t *testing.T) {
	v := viper.New()
	v.Set("SERVER_ADDRESS", "")

	_, err := Load(v)
	assert.Error(t, err)
}
