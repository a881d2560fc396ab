package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	assert.False(t, logger.With("a", 1).WithGroup("g").Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() {
		logger.Error("dropped", "graph", NewGraph(nil))
	})
}
