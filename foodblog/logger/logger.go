package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
)

// CustomHandler prints one line per record:
//
//	[foodblog] [15:04:05] [INFO] [DB] Query executed (took 3ms) query=...
type CustomHandler struct {
	mu      *sync.Mutex
	out     io.Writer
	level   slog.Leveler
	noColor bool
	attrs   []slog.Attr
	groups  []string
}

func NewHandler(out io.Writer, level slog.Leveler, noColor bool) *CustomHandler {
	return &CustomHandler{
		mu:      &sync.Mutex{},
		out:     out,
		level:   level,
		noColor: noColor,
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor, levelText = colorRed, "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor, levelText = colorYellow, "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor, levelText = colorGreen, "INFO"
	default:
		levelColor, levelText = colorPurple, "DEBUG"
	}

	message := r.Message
	var took time.Duration
	var extra strings.Builder
	logType := TypeSystem

	visit := func(a slog.Attr) {
		switch a.Key {
		case "type":
			logType = typeOf(a.Value.String())
		case "took":
			if a.Value.Kind() == slog.KindDuration {
				took = a.Value.Duration()
			}
		case "error":
			message = fmt.Sprintf("%s: %v", message, a.Value)
		default:
			key := a.Key
			if len(h.groups) > 0 {
				key = strings.Join(h.groups, ".") + "." + key
			}
			fmt.Fprintf(&extra, " %s=%v", key, a.Value)
		}
	}
	for _, a := range h.attrs {
		visit(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		visit(a)
		return true
	})

	if took > 0 {
		message = fmt.Sprintf("%s (took %s)", message, took.Round(time.Microsecond))
	}

	line := fmt.Sprintf("[foodblog] [%s] [%s] [%s] %s%s",
		r.Time.Format("15:04:05"), levelText, logType, message, extra.String())
	if !h.noColor {
		line = fmt.Sprintf("%s[foodblog] [%s] [%s%s%s] [%s] %s%s%s",
			colorWhite, r.Time.Format("15:04:05"), levelColor, levelText, colorWhite,
			logType, message, extra.String(), colorReset)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line)
	return err
}

func typeOf(v string) LogType {
	switch v {
	case "cmd":
		return TypeCommand
	case "db":
		return TypeDB
	case "error":
		return TypeError
	}
	return TypeSystem
}
