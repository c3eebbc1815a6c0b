// Package config provides configuration management for the Planora core.
//
// Configuration is loaded from an optional config.yaml, environment
// variables (standard names such as DATABASE_URL, LOG_LEVEL), and
// defaults, in that order of precedence.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Site     SiteConfig     `mapstructure:"site"`
	Log      LogConfig      `mapstructure:"log"`
	River    RiverConfig    `mapstructure:"river"`
	Security SecurityConfig `mapstructure:"security"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

// ServerConfig contains HTTP server settings for the ingest/ops surface.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains PostgreSQL connection settings. A single pgx
// pool is shared by Ent and River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// SiteConfig holds the URLs and sender identity stamped into outbound
// notifications. These point at the user-facing frontend, which is not
// part of this service.
type SiteConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	RegisterURL string `mapstructure:"register_url"`
	EmailFrom   string `mapstructure:"email_from"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains job queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	NotificationWorkers         int           `mapstructure:"notification_workers"`
	MediaWorkers                int           `mapstructure:"media_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
}

// SecurityConfig contains security-related settings. The process secret
// feeds the deterministic password-reset token digest; rotating it
// invalidates every outstanding reset token.
type SecurityConfig struct {
	ProcessSecret string `mapstructure:"process_secret"`
}

// WorkerConfig contains worker pool sizes.
type WorkerConfig struct {
	GeneralPoolSize  int `mapstructure:"general_pool_size"`
	OutboundPoolSize int `mapstructure:"outbound_pool_size"`
}

// CatalogConfig controls the album-type lookup service.
type CatalogConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

var (
	bootstrapLoggerOnce sync.Once
	bootstrapLogger     *zap.Logger
)

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/planora")

	// Standard env names without prefix: DATABASE_URL, LOG_LEVEL, ...
	// Nested keys map as database.max_conns → DATABASE_MAX_CONNS.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional; defaults and env vars suffice.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Security.ProcessSecret == "" {
		return fmt.Errorf("security.process_secret must not be empty")
	}
	if len(c.Security.ProcessSecret) < 32 {
		return fmt.Errorf("security.process_secret must be at least 32 characters")
	}
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url must not be empty")
	}
	return nil
}

// ensureSecrets auto-generates a missing process secret on first boot.
// The generated value is process-local: outstanding reset tokens do not
// survive a restart until the secret is pinned via env or file.
func (c *Config) ensureSecrets() error {
	if c.Security.ProcessSecret == "" {
		secret, err := generateSecureRandomHex(32)
		if err != nil {
			return fmt.Errorf("auto-generate process secret: %w", err)
		}
		c.Security.ProcessSecret = secret
		logBootstrapWarn(
			"auto-generated process_secret; set SECURITY_PROCESS_SECRET for persistence",
			zap.Int("length", len(secret)),
		)
	}
	return nil
}

func logBootstrapWarn(msg string, fields ...zap.Field) {
	bootstrapLoggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

		l, err := cfg.Build()
		if err != nil {
			bootstrapLogger = zap.NewNop()
			return
		}
		bootstrapLogger = l
	})

	bootstrapLogger.Warn(msg, fields...)
}

// generateSecureRandomHex produces a hex-encoded string of n random bytes.
func generateSecureRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "planora")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "planora")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Site
	v.SetDefault("site.base_url", "http://localhost:3000")
	v.SetDefault("site.register_url", "http://localhost:3000/register")
	v.SetDefault("site.email_from", "no-reply@planora.io")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.notification_workers", 20)
	v.SetDefault("river.media_workers", 5)
	v.SetDefault("river.completed_job_retention_period", "24h")

	// Worker pools
	v.SetDefault("worker.general_pool_size", 50)
	v.SetDefault("worker.outbound_pool_size", 100)

	// Catalog
	v.SetDefault("catalog.refresh_interval", "10m")
}
