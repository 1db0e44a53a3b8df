package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"pizzeria/config"
	deliverycontext "pizzeria/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("query errors are logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("deadlock detected"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "deadlock detected")
	})

	t.Run("not found and cancelled are quiet", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.Wrap(context.Canceled, "scan"))

		assert.Empty(t, buf.String())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("every query in debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Contains(t, buf.String(), "sql=\"SELECT 1\"")
	})

	t.Run("request logger is preferred", func(t *testing.T) {
		l, _ := newBufferedGormLogger(false)
		var reqBuf bytes.Buffer
		ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-9")))

		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		assert.Contains(t, reqBuf.String(), "request_id=req-9")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
