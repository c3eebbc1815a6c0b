package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.NotEmpty(t, cfg.Site.BaseURL)
	assert.NotZero(t, cfg.River.MaxWorkers)
	assert.NotZero(t, cfg.Worker.GeneralPoolSize)
	assert.NotZero(t, cfg.Catalog.RefreshInterval)
	assert.False(t, cfg.Database.AutoMigrate, "migrations must be opt-in")

	// First boot auto-generates a usable process secret.
	assert.GreaterOrEqual(t, len(cfg.Security.ProcessSecret), 32)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SECURITY_PROCESS_SECRET", strings.Repeat("s", 40))
	t.Setenv("DATABASE_AUTO_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, strings.Repeat("s", 40), cfg.Security.ProcessSecret)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := &Config{}
	cfg.Security.ProcessSecret = "short"
	cfg.Site.BaseURL = "https://planora.example"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestValidateRequiresBaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.Security.ProcessSecret = strings.Repeat("s", 32)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site.base_url")
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "planora",
		Password: "pw",
		Database: "planora",
		SSLMode:  "require",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "db.internal")
	assert.Contains(t, dsn, "5433")
	assert.Contains(t, dsn, "sslmode=require")

	cfg.URL = "postgres://u:p@host/db"
	assert.Equal(t, "postgres://u:p@host/db", cfg.DSN(), "explicit URL wins")
}
