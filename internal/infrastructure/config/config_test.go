package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "p2p-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 8*time.Hour, cfg.Session.Expiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, int64(8), cfg.Calendar.DetailConcurrency)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
}

func TestValidate_ConnectionPool(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Database.MaxIdleConns = 50

	err := cfg.validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_idle_conns")
}

func TestValidate_DetailConcurrency(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Calendar.DetailConcurrency = -1

	err := cfg.validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "detail_concurrency")
}

func TestValidate_ProductionRequiresSecrets(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.App.Env = "production"

	err := cfg.validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.secret")

	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
	err = cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.password")

	cfg.Database.Password = "secret"
	cfg.Database.SSLMode = "require"
	require.NoError(t, cfg.validate())
}

func TestValidate_ProductionRejectsWildcardCORS(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.App.Env = "production"
	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Database.Password = "secret"
	cfg.Database.SSLMode = "require"
	cfg.HTTP.CORSAllowOrigins = []string{"*"}

	err := cfg.validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cors_allow_origins")
}

func TestDatabaseDSN_EscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "p2p",
		Password: "p@ss/word",
		DBName:   "p2p",
		SSLMode:  "require",
	}

	dsn := d.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word")
}
