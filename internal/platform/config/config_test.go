package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.DatabaseDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "@daily", cfg.SweepSchedule)
	assert.Equal(t, time.UTC, cfg.SweepLocation)
	assert.Equal(t, 30*time.Second, cfg.AllocationLockTTL)
	assert.Equal(t, "mem://", cfg.BlobBucketURL)
	assert.Equal(t, "cms.notifications", cfg.AMQPExchange)
	assert.False(t, cfg.AllowDirectIssue)
	assert.True(t, cfg.EnforceDistinctApprovers)
	assert.Equal(t, "300-M", cfg.RateLimit)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SWEEP_SCHEDULE", "0 1 * * *")
	t.Setenv("SWEEP_TIMEZONE", "Asia/Kolkata")
	t.Setenv("ALLOCATION_LOCK_TTL", "5s")
	t.Setenv("ALLOW_DIRECT_ISSUE", "true")
	t.Setenv("ENFORCE_DISTINCT_APPROVERS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0 1 * * *", cfg.SweepSchedule)
	assert.Equal(t, "Asia/Kolkata", cfg.SweepLocation.String())
	assert.Equal(t, 5*time.Second, cfg.AllocationLockTTL)
	assert.True(t, cfg.AllowDirectIssue)
	assert.False(t, cfg.EnforceDistinctApprovers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "mysql")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "memory")
		t.Setenv("SWEEP_TIMEZONE", "Mars/Olympus")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("production without secret", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "memory")
		t.Setenv("IS_PRODUCTION", "true")
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
