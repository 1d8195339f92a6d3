// Package config loads and validates server config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP/h2c server listens on (e.g. :8080).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DBDriver is "sqlite" or "postgres".
	DBDriver string `mapstructure:"DB_DRIVER"`
	// DBDSN is the SQLite file path or the Postgres connection string.
	DBDSN string `mapstructure:"DB_DSN"`
	// JWTAccessSecret signs access tokens.
	JWTAccessSecret string `mapstructure:"JWT_ACCESS_SECRET"`
	// JWTRefreshSecret signs refresh tokens. Must differ from JWTAccessSecret.
	JWTRefreshSecret string `mapstructure:"JWT_REFRESH_SECRET"`
	// JWTAccessTTL is the access token lifetime (e.g. "15m").
	JWTAccessTTL string `mapstructure:"JWT_ACCESS_TTL"`
	// JWTRefreshTTL is the refresh token lifetime (e.g. "168h").
	JWTRefreshTTL string `mapstructure:"JWT_REFRESH_TTL"`
	// BcryptCost is the bcrypt cost factor, 4 to 31, for passwords and refresh-token hashes.
	BcryptCost int `mapstructure:"BCRYPT_COST"`
	// TokenSweepInterval is how often expired refresh tokens are deleted (e.g. "1h"). "0" disables the sweeper.
	TokenSweepInterval string `mapstructure:"TOKEN_SWEEP_INTERVAL"`
	// StaticPath is the directory of the browser client; empty disables static serving.
	StaticPath string `mapstructure:"STATIC_PATH"`
	// CORSOrigin is the allowed browser origin; "*" allows any.
	CORSOrigin string `mapstructure:"CORS_ORIGIN"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// LogFormat is "text" (colored) or "json".
	LogFormat string `mapstructure:"LOG_FORMAT"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`

	accessTTL     time.Duration
	refreshTTL    time.Duration
	sweepInterval time.Duration
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "./data/money-matters.db")
	v.SetDefault("JWT_ACCESS_SECRET", "")
	v.SetDefault("JWT_REFRESH_SECRET", "")
	v.SetDefault("JWT_ACCESS_TTL", "15m")
	v.SetDefault("JWT_REFRESH_TTL", "168h") // 7d
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("TOKEN_SWEEP_INTERVAL", "1h")
	v.SetDefault("STATIC_PATH", "")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_ENV", "development")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPAddr == "" {
		return errors.New("config: HTTP_ADDR must be set")
	}

	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	if c.DBDriver != "sqlite" && c.DBDriver != "postgres" {
		return fmt.Errorf("config: DB_DRIVER must be sqlite or postgres, got %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return errors.New("config: DB_DSN must be set")
	}

	if c.JWTAccessSecret == "" || c.JWTRefreshSecret == "" {
		return errors.New("config: JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set")
	}
	if c.JWTAccessSecret == c.JWTRefreshSecret {
		return errors.New("config: JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if c.Env == "production" && (len(c.JWTAccessSecret) < 32 || len(c.JWTRefreshSecret) < 32) {
		return errors.New("config: JWT secrets must be at least 32 bytes when APP_ENV=production")
	}

	var err error
	if c.accessTTL, err = positiveDuration("JWT_ACCESS_TTL", c.JWTAccessTTL); err != nil {
		return err
	}
	if c.refreshTTL, err = positiveDuration("JWT_REFRESH_TTL", c.JWTRefreshTTL); err != nil {
		return err
	}
	if c.refreshTTL <= c.accessTTL {
		return errors.New("config: JWT_REFRESH_TTL must be longer than JWT_ACCESS_TTL")
	}
	if c.sweepInterval, err = time.ParseDuration(c.TokenSweepInterval); err != nil || c.sweepInterval < 0 {
		return fmt.Errorf("config: TOKEN_SWEEP_INTERVAL %q is not a valid duration", c.TokenSweepInterval)
	}

	if c.BcryptCost == 0 {
		c.BcryptCost = 10
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func positiveDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("config: %s %q is not a positive duration", key, value)
	}
	return d, nil
}

// AccessTTL is the parsed JWT_ACCESS_TTL.
func (c *Config) AccessTTL() time.Duration { return c.accessTTL }

// RefreshTTL is the parsed JWT_REFRESH_TTL.
func (c *Config) RefreshTTL() time.Duration { return c.refreshTTL }

// SweepInterval is the parsed TOKEN_SWEEP_INTERVAL. Zero disables sweeping.
func (c *Config) SweepInterval() time.Duration { return c.sweepInterval }

// Production reports whether APP_ENV is "production".
func (c *Config) Production() bool { return c.Env == "production" }
