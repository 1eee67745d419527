// Package config reads storefront settings from defaults, an optional
// storefront.yaml and STOREFRONT_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Storage struct {
	Backend     string `mapstructure:"backend"`
	Dir         string `mapstructure:"dir"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	RedisAddr   string `mapstructure:"redis_addr"`
	DatabaseURL string `mapstructure:"database_url"`
}

type Auth struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
	ResetLatency  time.Duration `mapstructure:"reset_latency"`
}

type RateLimit struct {
	RPS        float64       `mapstructure:"rps"`
	Burst      int           `mapstructure:"burst"`
	MaxStrikes int           `mapstructure:"max_strikes"`
	BanFor     time.Duration `mapstructure:"ban_for"`
}

type Config struct {
	Addr            string        `mapstructure:"addr"`
	LogLevel        string        `mapstructure:"log_level"`
	SeedFile        string        `mapstructure:"seed_file"`
	CheckoutLatency time.Duration `mapstructure:"checkout_latency"`
	TrackingLatency time.Duration `mapstructure:"tracking_latency"`
	SessionIdleTTL  time.Duration `mapstructure:"session_idle_ttl"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	Storage         Storage       `mapstructure:"storage"`
	Auth            Auth          `mapstructure:"auth"`
	RateLimit       RateLimit     `mapstructure:"rate_limit"`
}

// New returns a viper instance with every default registered and the
// environment bound. Flags may be bound onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("seed_file", "")
	v.SetDefault("checkout_latency", 1500*time.Millisecond)
	v.SetDefault("tracking_latency", time.Second)
	v.SetDefault("session_idle_ttl", 30*time.Minute)
	v.SetDefault("cors_origins", []string{"*"})

	v.SetDefault("storage.backend", BackendMemory)
	v.SetDefault("storage.dir", "data")
	v.SetDefault("storage.sqlite_path", "storefront.db")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.database_url", "")

	v.SetDefault("auth.jwt_secret", "super-secret-key")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.admin_email", "admin@example.com")
	v.SetDefault("auth.admin_password", "admin123")
	v.SetDefault("auth.reset_latency", 1500*time.Millisecond)

	v.SetDefault("rate_limit.rps", 5.0)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("rate_limit.max_strikes", 5)
	v.SetDefault("rate_limit.ban_for", 10*time.Minute)

	v.SetConfigName("storefront")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, and decodes v. An explicit path
// overrides the search for storefront.yaml.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendSQLite, BackendRedis:
	case BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			return errors.New("storage.database_url is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret must not be empty")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate_limit.rps and rate_limit.burst must be positive")
	}
	return nil
}
