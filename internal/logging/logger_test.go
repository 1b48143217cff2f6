package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevel(t *testing.T) {
	ctx := context.Background()

	t.Run("warn by default", func(t *testing.T) {
		t.Setenv("DESIEGE_LOG_LEVEL", "")
		log := NewLogger(&config.RuntimeConfig{})
		assert.False(t, log.Enabled(ctx, slog.LevelInfo))
		assert.True(t, log.Enabled(ctx, slog.LevelWarn))
	})

	t.Run("debug flag", func(t *testing.T) {
		t.Setenv("DESIEGE_LOG_LEVEL", "")
		log := NewLogger(&config.RuntimeConfig{Debug: true})
		assert.True(t, log.Enabled(ctx, slog.LevelDebug))
	})

	t.Run("env overrides debug flag", func(t *testing.T) {
		t.Setenv("DESIEGE_LOG_LEVEL", "error")
		log := NewLogger(&config.RuntimeConfig{Debug: true})
		assert.False(t, log.Enabled(ctx, slog.LevelWarn))
		assert.True(t, log.Enabled(ctx, slog.LevelError))
	})

	t.Run("unknown env value keeps level", func(t *testing.T) {
		t.Setenv("DESIEGE_LOG_LEVEL", "loud")
		log := NewLogger(&config.RuntimeConfig{})
		assert.True(t, log.Enabled(ctx, slog.LevelWarn))
		assert.False(t, log.Enabled(ctx, slog.LevelInfo))
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/deploy_contract.go", shortPath("/home/ci/src/desiege-cli/internal/usecase/deploy_contract.go"))
	assert.Equal(t, "main.go", shortPath("/elsewhere/main.go"))
}
