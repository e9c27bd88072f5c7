package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWithContextAndFromContext(t *testing.T) {
	log := zap.NewNop()
	ctx := WithContext(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
}

func TestFromContext_MissingLogger(t *testing.T) {
	log := FromContext(context.Background())

	// Falls back to a usable no-op logger
	assert.NotNil(t, log)
	log.Info("does not panic")
}

func TestWithRequestID(t *testing.T) {
	ctx, enriched := WithRequestID(context.Background(), zap.NewNop(), "req-123")

	assert.NotNil(t, enriched)
	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Same(t, enriched, FromContext(ctx))
}

func TestWithUserID(t *testing.T) {
	ctx, enriched := WithUserID(context.Background(), zap.NewNop(), "user-456")

	assert.NotNil(t, enriched)
	assert.Equal(t, "user-456", GetUserID(ctx))
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestGetUserID_Missing(t *testing.T) {
	assert.Equal(t, "", GetUserID(context.Background()))
}
