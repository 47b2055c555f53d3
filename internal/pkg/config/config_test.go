package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.AuditWorkers)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "society", cfg.Mongo.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.False(t, cfg.IsProduction())
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":     "secret",
		"PORT":           "9090",
		"TOKEN_TTL":      "90m",
		"MONGO_DB":       "society_test",
		"REDIS_DB":       "2",
		"ADMIN_EMAIL":    "root@society.org",
		"ADMIN_PASSWORD": "pw",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "society_test", cfg.Mongo.Database)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "root@society.org", cfg.Admin.Email)
}

func TestLoadWith_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"missing secret":         {},
		"short production key":   {"JWT_SECRET": "short", "ENV": "production"},
		"admin without password": {"JWT_SECRET": "secret", "ADMIN_EMAIL": "root@society.org"},
		"non-positive ttl":       {"JWT_SECRET": "secret", "TOKEN_TTL": "0s"},
		"malformed number":       {"JWT_SECRET": "secret", "REDIS_DB": "two"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadWith(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}
