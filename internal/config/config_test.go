package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SIM_BUILD_DELAY", "")
	t.Setenv("NATS_URL", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Empty(t, cfg.App.NatsURL)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 3*time.Second, cfg.Simulation.BuildDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Simulation.ParseDelay)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SIM_BUILD_DELAY", "250ms")
	t.Setenv("SIM_PARSE_DELAY", "40")
	t.Setenv("SIM_CHAT_DELAY", "soon")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.Equal(t, 250*time.Millisecond, cfg.Simulation.BuildDelay)
	assert.Equal(t, 40*time.Millisecond, cfg.Simulation.ParseDelay)
	assert.Equal(t, 2*time.Second, cfg.Simulation.ChatReplyDelay)
	assert.True(t, cfg.Tracing.Enabled)
	assert.True(t, cfg.IsProduction())
}
