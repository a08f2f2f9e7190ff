package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFromContext_NoLoggerReturnsNop(t *testing.T) {
	l := FromContext(context.Background())
	assert.NotNil(t, l)
}

func TestWithContext_RoundTrip(t *testing.T) {
	base := zap.NewNop()
	ctx := WithContext(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))
}

func TestWithRequestID(t *testing.T) {
	ctx, enriched := WithRequestID(context.Background(), zap.NewNop(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Same(t, enriched, FromContext(ctx))
}

func TestWithStaffCode(t *testing.T) {
	ctx, _ := WithStaffCode(context.Background(), zap.NewNop(), "EMP-001")
	assert.Equal(t, "EMP-001", GetStaffCode(ctx))
}

func TestGetStaffCode_Missing(t *testing.T) {
	assert.Equal(t, "", GetStaffCode(context.Background()))
}

func TestWithTraceContext_NoSpanLeavesLoggerUnchanged(t *testing.T) {
	base := zap.NewNop()
	assert.Same(t, base, WithTraceContext(context.Background(), base))
}
