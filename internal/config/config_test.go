package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SWEEP_WORKERS", "")

	cfg, err := Load()
	require.Error(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 2, cfg.SweepWorkers)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Equal(t, "cases.escalated", cfg.NATSSubjectPrefix)
	assert.False(t, cfg.ProfilesWatch)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/beacon")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("SWEEP_WORKERS", "4")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("PROFILES_DIR", "/etc/beacon/profiles")
	t.Setenv("PROFILES_WATCH", "true")
	t.Setenv("MAX_CONNS", "256")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 4, cfg.SweepWorkers)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.Equal(t, "/etc/beacon/profiles", cfg.ProfilesDir)
	assert.True(t, cfg.ProfilesWatch)
	assert.Equal(t, 256, cfg.MaxConns)
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/beacon")
	t.Setenv("SWEEP_WORKERS", "many")
	t.Setenv("SWEEP_INTERVAL", "-5s")
	t.Setenv("PROFILES_WATCH", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.SweepWorkers)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.False(t, cfg.ProfilesWatch)
}
