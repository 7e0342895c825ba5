package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/repostream/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns the ID attached to ctx. A new ID is generated and attached if ctx has
// none. The same ID is used for a webhook delivery and for an update run.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	id := types.NewRequestID()
	return id, context.WithValue(ctx, ctxRequestIDKey{}, id)
}

type ctxLoggerKey struct{}

func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From falls back to the default logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}

type TimeFunc func() time.Time

// CtxTime returns time.Now() unless a TimeFunc is attached by CtxWithTime.
func CtxTime(ctx context.Context) time.Time {
	if fn, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return fn()
	}
	return time.Now()
}

func CtxWithTime(ctx context.Context, fn TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, fn)
}

// InheritContextValues copies the request ID and time function of src into dst. The logger is
// not copied.
func InheritContextValues(dst, src context.Context) context.Context {
	if id, ok := src.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		dst = context.WithValue(dst, ctxRequestIDKey{}, id)
	}
	if fn, ok := src.Value(ctxTimeKey{}).(TimeFunc); ok {
		dst = context.WithValue(dst, ctxTimeKey{}, fn)
	}
	return dst
}
