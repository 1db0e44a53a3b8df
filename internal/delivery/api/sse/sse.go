// Package sse writes server-sent event streams on an echo response.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Stream writes each value received from events as one named SSE frame. It
// returns when events closes or the client disconnects. A comment line goes
// out every heartbeat so proxies keep the connection open.
func Stream[T any](c echo.Context, name string, events <-chan T, heartbeat time.Duration) error {
	res := c.Response()
	header := res.Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	var tick <-chan time.Time
	if heartbeat > 0 {
		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()
		tick = ticker.C
	}

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case v, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(res, name, v); err != nil {
				return err
			}

		case <-tick:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return errors.Wrap(err, "failed to write heartbeat")
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return errors.Wrap(err, "failed to write event")
	}
	res.Flush()

	return nil
}
