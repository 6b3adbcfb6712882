package database

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func requestContext(t *testing.T, buf *bytes.Buffer) context.Context {
	t.Helper()
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	zl := zerolog.New(buf).With().Str("request_id", "req-42").Logger()
	return zl.WithContext(context.Background())
}

func query(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormLoggerFailedQuery(t *testing.T) {
	var buf bytes.Buffer
	ctx := requestContext(t, &buf)

	NewGormLogger(logger.Error).Trace(ctx, time.Now(), query("SELECT * FROM teams"), errors.New("boom"))

	out := buf.String()
	require.Contains(t, out, `"level":"error"`)
	require.Contains(t, out, `"request_id":"req-42"`)
	require.Contains(t, out, `"error":"boom"`)
	require.Contains(t, out, "SELECT * FROM teams")
}

func TestGormLoggerIgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	ctx := requestContext(t, &buf)

	NewGormLogger(logger.Error).Trace(ctx, time.Now(), query("SELECT * FROM teams"), gorm.ErrRecordNotFound)
	require.Empty(t, buf.String())
}

func TestGormLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	ctx := requestContext(t, &buf)

	NewGormLogger(logger.Silent).Trace(ctx, time.Now(), query("SELECT 1"), errors.New("boom"))
	NewGormLogger(logger.Warn).Trace(ctx, time.Now(), query("SELECT 1"), nil)
	require.Empty(t, buf.String())

	slow := time.Now().Add(-time.Second)
	NewGormLogger(logger.Warn).Trace(ctx, slow, query("SELECT 2"), nil)
	require.Contains(t, buf.String(), "Slow query")

	buf.Reset()
	NewGormLogger(logger.Silent).LogMode(logger.Info).Trace(ctx, time.Now(), query("SELECT 3"), nil)
	require.Contains(t, buf.String(), `"level":"debug"`)
	require.Contains(t, buf.String(), "SELECT 3")
}

func TestGormLoggerFallsBackToGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	NewGormLogger(logger.Warn).Warn(context.Background(), "pool %s", "exhausted")
	require.Contains(t, buf.String(), "pool exhausted")
}

func TestOpenLogsThroughRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := requestContext(t, &buf)

	db, err := Open("sqlite", filepath.Join(t.TempDir(), "log.db"), logger.Info)
	require.NoError(t, err)
	require.NoError(t, db.WithContext(ctx).Exec("SELECT 1").Error)

	require.Contains(t, buf.String(), `"request_id":"req-42"`)
	require.Contains(t, buf.String(), "SELECT 1")
}

func TestGormLogLevel(t *testing.T) {
	require.Equal(t, logger.Info, GormLogLevel(zerolog.DebugLevel))
	require.Equal(t, logger.Warn, GormLogLevel(zerolog.InfoLevel))
	require.Equal(t, logger.Error, GormLogLevel(zerolog.ErrorLevel))
	require.Equal(t, logger.Silent, GormLogLevel(zerolog.Disabled))
}
