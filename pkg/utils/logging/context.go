package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns the request ID of ctx. When none is set, a new ID is generated and returned
// together with a derived context carrying it.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

// CtxWithRequestID returns a new context carrying id as its request ID.
func CtxWithRequestID(ctx context.Context, id types.RequestID) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, id)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}

// TimeFunc is the clock used by cache updates and the history window.
type TimeFunc func() time.Time

// CtxTime returns the current time according to the clock of ctx, or time.Now if no clock is set.
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

// CtxWithTime returns a new context with time function
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// Detach returns a context that is never cancelled but keeps the logger, request ID and clock of
// ctx. Webhook processing runs on it after the HTTP response has been written.
func Detach(ctx context.Context) context.Context {
	dst := With(context.Background(), From(ctx))

	if reqID, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		dst = context.WithValue(dst, ctxRequestIDKey{}, reqID)
	}
	if timeFunc, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		dst = context.WithValue(dst, ctxTimeKey{}, timeFunc)
	}

	return dst
}
