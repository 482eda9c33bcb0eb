package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("TX_MAX_ATTEMPTS", "")

	cfg := Load("testdata/does-not-exist.env")

	assert.Equal(t, "checklist-service", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 3, cfg.Tx.MaxAttempts)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.KafkaEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("TX_MAX_ATTEMPTS", "5")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load("testdata/does-not-exist.env")

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 5, cfg.Tx.MaxAttempts)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.IsDevelopment())
}
