package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, domain.CreditMinusDebit, cfg.SupplierBalanceConvention)
	assert.Equal(t, 10, cfg.RecentActivityLimit)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"localhost:6379"}, cfg.RedisAddrs)
	assert.False(t, cfg.AuthEnabled)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "REDIS")
	t.Setenv("REDIS_ADDRS", "a:6379, b:6379")
	t.Setenv("SUPPLIER_BALANCE_CONVENTION", "debit_minus_credit")
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, []string{"a:6379", "b:6379"}, cfg.RedisAddrs)
	assert.Equal(t, domain.DebitMinusCredit, cfg.SupplierBalanceConvention)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration, "bad duration falls back")
	assert.Equal(t, "DEBUG", cfg.LogLevel.String())
	assert.Len(t, cfg.CORSAllowedOrigins, 2)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "mongo"}},
		{"pgsql without url", map[string]string{"STORAGE_BACKEND": "pgsql"}},
		{"bad convention", map[string]string{"SUPPLIER_BALANCE_CONVENTION": "sideways"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"auth without password", map[string]string{"AUTH_ENABLED": "true"}},
		{"production auth without secret", map[string]string{"AUTH_ENABLED": "true", "ADMIN_PASSWORD_HASH": "x", "IS_PRODUCTION": "true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestLoad_EphemeralSecretOutsideProduction(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("ADMIN_PASSWORD_HASH", "x")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Len(t, cfg.JWTSecret, 64)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9090\"\nrecent_activity_limit: 25\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 25, cfg.RecentActivityLimit)

	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = load(viper.New())
	assert.Error(t, err)
}
