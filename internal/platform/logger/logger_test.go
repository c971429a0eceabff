package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/pkg/requestcontext"
)

func TestContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo)

	ctx := requestcontext.WithRequestID(context.Background(), "req-1")
	ctx = requestcontext.WithPrincipal(ctx, requestcontext.Principal{UserID: 9, Role: requestcontext.RoleCharity})
	log.With("component", "test").InfoContext(ctx, "created")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "created", rec["msg"])
	assert.Equal(t, "charity", rec["service"])
	assert.Equal(t, "test", rec["component"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, float64(9), rec["user_id"])
	assert.Equal(t, "charity", rec["role"])
}

func TestExplicitRequestIDWins(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo)
	ctx := requestcontext.WithRequestID(context.Background(), "from-ctx")
	log.InfoContext(ctx, "login failed", "request_id", "explicit")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"request_id"`)))
	assert.Contains(t, buf.String(), "explicit")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelWarn)
	log.Info("quiet")
	assert.Zero(t, buf.Len())

	log.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
	assert.NotContains(t, buf.String(), "request_id")
}
