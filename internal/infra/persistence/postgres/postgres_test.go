package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Report(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatcher{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	w.report(context.Background(), sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	w.report(context.Background(), sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "avgWait=5ms")

	buf.Reset()
	w.report(context.Background(), sql.DBStats{}, sql.DBStats{WaitCount: 1, WaitDuration: time.Second})
	assert.Contains(t, buf.String(), "level=WARN")
}
