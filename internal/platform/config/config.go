package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendFile  = "file"
	BackendPgsql = "pgsql"
	BackendRedis = "redis"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	StorageBackend string
	DataDir        string
	DatabaseURL    string
	EnableDBCheck  bool
	RedisAddrs     []string
	RedisPassword  string
	RedisPrefix    string
	RedisCluster   bool

	AuthEnabled       bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AdminUsername     string
	AdminPasswordHash string

	SupplierBalanceConvention domain.BalanceConvention
	RecentActivityLimit       int

	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from an optional YAML file (CONFIG_FILE), a .env
// file if present, and environment variables, later sources winning.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", BackendFile)
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("REDIS_ADDRS", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_PREFIX", "ledger")
	v.SetDefault("REDIS_CLUSTER", false)
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "ledger-book-app")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("SUPPLIER_BALANCE_CONVENTION", string(domain.CreditMinusDebit))
	v.SetDefault("RECENT_ACTIVITY_LIMIT", 10)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", utils.DefaultPosthogEndpoint)

	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		StorageBackend:    strings.ToLower(v.GetString("STORAGE_BACKEND")),
		DataDir:           v.GetString("DATA_DIR"),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		RedisAddrs:        splitList(v.GetString("REDIS_ADDRS")),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisPrefix:       v.GetString("REDIS_PREFIX"),
		RedisCluster:      v.GetBool("REDIS_CLUSTER"),
		AuthEnabled:       v.GetBool("AUTH_ENABLED"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		AdminUsername:     v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		PosthogAPIKey:     v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:   v.GetString("POSTHOG_ENDPOINT"),
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT not set. Defaulting to %s\n", cfg.Port)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v.GetString("LOG_LEVEL"), err)
	}

	switch cfg.StorageBackend {
	case BackendFile:
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("DATA_DIR is required for the file backend")
		}
	case BackendPgsql:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required for the pgsql backend")
		}
	case BackendRedis:
		if len(cfg.RedisAddrs) == 0 {
			return nil, fmt.Errorf("REDIS_ADDRS is required for the redis backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want %s, %s or %s)", cfg.StorageBackend, BackendFile, BackendPgsql, BackendRedis)
	}

	convention, err := domain.ParseBalanceConvention(v.GetString("SUPPLIER_BALANCE_CONVENTION"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUPPLIER_BALANCE_CONVENTION: %w", err)
	}
	cfg.SupplierBalanceConvention = convention

	cfg.RecentActivityLimit = v.GetInt("RECENT_ACTIVITY_LIMIT")
	if cfg.RecentActivityLimit <= 0 {
		cfg.RecentActivityLimit = 10
		log.Printf("Warning: invalid RECENT_ACTIVITY_LIMIT. Defaulting to %d\n", cfg.RecentActivityLimit)
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	cfg.JWTExpiryDuration, err = time.ParseDuration(jwtExpiryStr)
	if err != nil || cfg.JWTExpiryDuration <= 0 {
		cfg.JWTExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, cfg.JWTExpiryDuration)
	}

	if cfg.AuthEnabled {
		if cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required when AUTH_ENABLED is set")
		}
		if cfg.JWTSecret == "" {
			if cfg.IsProduction {
				return nil, fmt.Errorf("JWT_SECRET is required in production when AUTH_ENABLED is set")
			}
			cfg.JWTSecret, err = utils.GenerateSecureRandomString(32)
			if err != nil {
				return nil, err
			}
			log.Println("Warning: JWT_SECRET not set. Using an ephemeral secret; tokens will not survive a restart.")
		}
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
