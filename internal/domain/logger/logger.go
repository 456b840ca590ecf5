package logger

import (
	"log/slog"
	"time"
)

// QueryLogger reports one executed statement. Successful statements are
// logged at debug level so they stay out of interactive sessions.
type QueryLogger struct {
	Operation string
	Query     string
	StartTime time.Time
}

func (l *QueryLogger) Log(err error, rowsAffected int64) {
	duration := time.Since(l.StartTime)

	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", l.Operation),
		slog.String("query", l.Query),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
		return
	}

	slog.Debug("Query executed", append(attrs, slog.Int64("affected_rows", rowsAffected))...)
}
