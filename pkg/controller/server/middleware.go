package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/utils/logging"
)

const (
	requestIDHeader      = "X-Request-ID"
	githubEventHeader    = "X-GitHub-Event"
	githubDeliveryHeader = "X-GitHub-Delivery"
)

// preProcess assigns a request ID and a request scoped logger. GitHub deliveries reuse the delivery
// GUID as request ID so that logs and Sentry events can be matched with the app's delivery log.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if delivery := r.Header.Get(githubDeliveryHeader); delivery != "" {
			ctx = logging.CtxWithRequestID(ctx, types.RequestID(delivery))
		}
		reqID, ctx := logging.CtxRequestID(ctx)
		logger := logging.Default().With(slog.String("request_id", reqID.String()))
		ctx = logging.With(ctx, logger)

		w.Header().Set(requestIDHeader, reqID.String())
		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("github_event", r.Header.Get(githubEventHeader)),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
