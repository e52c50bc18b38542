package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

func TestLogWritesEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core).With(logger.RequestID("req-1")))

	Log(ctx, EventSignIn, logger.UserName("admin"))

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "audit", e.LoggerName)
	fields := e.ContextMap()
	assert.Equal(t, EventSignIn, fields["event"])
	assert.Equal(t, "admin", fields["user_name"])
	assert.Equal(t, "req-1", fields["request_id"])
}
