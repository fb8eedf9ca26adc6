package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestWithContext_FromContext(t *testing.T) {
	base, _ := newObservedLogger()
	ctx := WithContext(context.Background(), base)

	assert.Equal(t, base, FromContext(ctx))
}

func TestFromContext_ReturnsNopWhenMissing(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	// Should not panic
	l.Info("noop")
}

func TestWithRequestID(t *testing.T) {
	base, logs := newObservedLogger()

	ctx, enriched := WithRequestID(context.Background(), base, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	enriched.Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])
}

func TestContextLogger_InjectsContextFields(t *testing.T) {
	base, logs := newObservedLogger()
	ctx := WithContext(context.Background(), base)
	ctx = context.WithValue(ctx, RequestIDKey, "req-456")
	ctx = context.WithValue(ctx, ActorIDKey, "actor-789")

	L(ctx).Info("processing")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-456", fields["request_id"])
	assert.Equal(t, "actor-789", fields["actor_id"])
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, MapGormLogLevel("silent"), MapGormLogLevel("silent"))
	assert.NotEqual(t, MapGormLogLevel("error"), MapGormLogLevel("info"))
	// Unknown levels fall back to warn
	assert.Equal(t, MapGormLogLevel("warn"), MapGormLogLevel("bogus"))
}
