package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type slowQueryKey struct{}

type queryStart struct {
	sql string
	at  time.Time
}

// slowQueryTracer logs a warning for every statement that runs longer than
// threshold.
type slowQueryTracer struct {
	threshold time.Duration
	log       *zerolog.Logger
	now       func() time.Time
}

func (t *slowQueryTracer) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryKey{}, queryStart{sql: data.SQL, at: t.clock()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(slowQueryKey{}).(queryStart)
	if !ok {
		return
	}

	elapsed := t.clock().Sub(start.at)
	if elapsed < t.threshold {
		return
	}

	event := t.log.Warn()
	if data.Err != nil {
		event = event.Err(data.Err)
	}
	event.
		Dur("duration", elapsed).
		Dur("threshold", t.threshold).
		Str("sql", start.sql).
		Msg("slow query")
}
