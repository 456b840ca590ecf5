package logger

import (
	"log/slog"
	"time"
)

// LogCommand records one finished command run against a store.
func LogCommand(name, store string, took time.Duration, err error, attrs ...any) {
	base := []any{
		slog.String("type", "cmd"),
		slog.String("command", name),
		slog.String("store", store),
		slog.Duration("took", took),
	}
	if err != nil {
		slog.Error("Command failed", append(append(base, slog.Any("error", err)), attrs...)...)
		return
	}
	slog.Info("Command finished", append(base, attrs...)...)
}

// LogSearch records a recipe search. A search that matched nothing is not a
// failure and is logged with matched=0.
func LogSearch(store, ingredients, meals string, matched int, took time.Duration, err error) {
	LogCommand("find", store, took, err,
		slog.String("ingredients", ingredients),
		slog.String("meals", meals),
		slog.Int("matched", matched),
	)
}

func LogStoreOpened(store, driver string, took time.Duration) {
	slog.Info("Store opened",
		slog.String("type", "sys"),
		slog.String("store", store),
		slog.String("driver", driver),
		slog.Duration("took", took),
	)
}

func LogError(msg string, err error, attrs ...any) {
	slog.Error(msg, append([]any{slog.String("type", "error"), slog.Any("error", err)}, attrs...)...)
}
