package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsSilent(t *testing.T) {
	assert.False(t, L().Enabled(context.Background(), slog.LevelError))
}

func TestSet(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	L().Debug("partition", "workers", 3)
	assert.Contains(t, buf.String(), "workers=3")

	Set(nil)
	assert.False(t, L().Enabled(context.Background(), slog.LevelError))
}
