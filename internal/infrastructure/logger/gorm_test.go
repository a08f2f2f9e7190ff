package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), logs
}

func queryFunc(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_TraceLogsQueryAtDebug(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Info)

	gl.Trace(context.Background(), time.Now(), queryFunc("SELECT 1", 1), nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
	assert.EqualValues(t, 1, entries[0].ContextMap()["rows"])
}

func TestGormLogger_TraceLogsErrors(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), queryFunc("SELECT broken", 0), errors.New("syntax error"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Equal(t, "sql error", entries[0].Message)
}

func TestGormLogger_RecordNotFoundSuppressedByDefault(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), queryFunc("SELECT 1", 0), gormlogger.ErrRecordNotFound)

	assert.Zero(t, logs.Len())
}

func TestGormLogger_RecordNotFoundLoggedWhenEnabled(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error, WithRecordNotFoundLogging())

	gl.Trace(context.Background(), time.Now(), queryFunc("SELECT 1", 0), gormlogger.ErrRecordNotFound)

	assert.Equal(t, 1, logs.Len())
}

func TestGormLogger_SlowQueryLogsAtWarn(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(time.Millisecond))

	gl.Trace(context.Background(), time.Now().Add(-time.Second), queryFunc("SELECT pg_sleep(1)", 0), nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, "slow sql", entries[0].Message)
}

func TestGormLogger_SilentLevelLogsNothing(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Silent)

	gl.Trace(context.Background(), time.Now(), queryFunc("SELECT 1", 1), errors.New("ignored"))
	gl.Info(context.Background(), "ignored")
	gl.Error(context.Background(), "ignored")

	assert.Zero(t, logs.Len())
}

func TestGormLogger_TraceIncludesRequestID(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Info)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
	gl.Trace(ctx, time.Now(), queryFunc("SELECT 1", 1), nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}

func TestGormLogger_LogModeReturnsCopy(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Silent)

	verbose := gl.LogMode(gormlogger.Info)
	verbose.Trace(context.Background(), time.Now(), queryFunc("SELECT 1", 1), nil)
	assert.Equal(t, 1, logs.Len())

	gl.Trace(context.Background(), time.Now(), queryFunc("SELECT 1", 1), nil)
	assert.Equal(t, 1, logs.Len())
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}
