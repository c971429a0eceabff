package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("CHARITY_ADDR", "")
	t.Setenv("JWT_SIGNING_KEY", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.NotEmpty(t, cfg.Server.JWTSigningKey)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "disk", cfg.Documents.Backend)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("CHARITY_ADDR", ":9090")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.Database.AutoMigrate)
}
