package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	RPCMethodKey contextKey = "rpc_method"
	ToolNameKey  contextKey = "tool"
)

// contextAttrs lists the context values copied onto every record.
var contextAttrs = []contextKey{RequestIDKey, RPCMethodKey, ToolNameKey}

// StackTraceHandler is a handler that adds stack trace to error records
// and extracts request scoped values from context
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		for _, key := range contextAttrs {
			if val, ok := ctx.Value(key).(string); ok && val != "" {
				r.AddAttrs(slog.String(string(key), val))
			}
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *StackTraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *StackTraceHandler) WithGroup(name string) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithGroup(name)}
}

// WithValue stores a request scoped logging attribute in ctx.
func WithValue(ctx context.Context, key contextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

// NewStructuredLogger builds the JSON logger written to w.
func NewStructuredLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	jsonHandler := slog.NewJSONHandler(w, opts)

	return slog.New(&StackTraceHandler{Handler: jsonHandler})
}

// InitStructuredLogger initialize structured logger
func InitStructuredLogger(level slog.Leveler) {
	slog.SetDefault(NewStructuredLogger(os.Stdout, level))
}
