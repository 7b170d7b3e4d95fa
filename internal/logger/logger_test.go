package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelThreshold(t *testing.T) {
	ctx := context.Background()

	info := New(0)
	assert.True(t, info.Enabled(ctx, slog.LevelInfo))
	assert.False(t, info.Enabled(ctx, slog.LevelDebug))

	debug := New(int(slog.LevelDebug))
	assert.True(t, debug.Enabled(ctx, slog.LevelDebug))
	assert.True(t, debug.Enabled(ctx, slog.LevelError))
}
