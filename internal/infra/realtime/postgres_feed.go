package realtime

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// pgNotifyMaxPayload is the server limit on NOTIFY payloads.
const pgNotifyMaxPayload = 8000

// postgresTransport carries change events over LISTEN/NOTIFY. Publishing goes
// through a small pool; listening holds one dedicated connection.
type postgresTransport struct {
	dsn     string
	channel string
	pool    *pgxpool.Pool
}

func newPostgresTransport(ctx context.Context, dsn, channel string) (*postgresTransport, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "invalid realtime postgres dsn")
	}
	poolCfg.MaxConns = 4

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create realtime postgres pool")
	}

	return &postgresTransport{dsn: dsn, channel: channel, pool: pool}, nil
}

func (t *postgresTransport) name() string {
	return "postgres"
}

func (t *postgresTransport) publish(ctx context.Context, payload []byte) error {
	if len(payload) >= pgNotifyMaxPayload {
		return errors.Errorf("change event of %d bytes exceeds NOTIFY limit", len(payload))
	}

	_, err := t.pool.Exec(ctx, "SELECT pg_notify($1, $2)", t.channel, string(payload))

	return errors.WithStack(err)
}

func (t *postgresTransport) listen(ctx context.Context, ready func(), deliver func(payload []byte)) error {
	conn, err := pgx.Connect(ctx, t.dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open listen connection")
	}
	defer conn.Close(context.WithoutCancel(ctx))

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{t.channel}.Sanitize()); err != nil {
		return errors.Wrap(err, "failed to LISTEN")
	}
	ready()

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		deliver([]byte(notification.Payload))
	}
}

func (t *postgresTransport) close() error {
	t.pool.Close()

	return nil
}
