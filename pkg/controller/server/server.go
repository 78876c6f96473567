package server

import (
	"net/http"

	"log/slog"

	"github.com/aavshr/fixcache/pkg/domain/interfaces"
	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/utils/errutil"
	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret types.GitHubAppSecret
	metrics  http.Handler
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithMetricsHandler replaces the handler served on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(cfg *config) {
		cfg.metrics = h
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		metrics: promhttp.Handler(),
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", cfg.metrics)
	r.Route("/webhook", func(r chi.Router) {
		r.Route("/github", func(r chi.Router) {
			r.Post("/app", func(w http.ResponseWriter, r *http.Request) {
				// Validate and parse the webhook event synchronously
				event, err := parseGitHubAppEvent(r, cfg.ghSecret)
				if err != nil {
					errutil.HandleError(r.Context(), "fail to parse GitHub App event", err)
					safeWrite(w, http.StatusBadRequest, []byte(`{"status":"error","message":"invalid webhook request"}`))
					return
				}

				if event == nil {
					safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"event ignored"}`))
					return
				}

				// The request context is cancelled once the response is sent
				go handleEvent(logging.Detach(r.Context()), uc, event)

				safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"event accepted"}`))
			})
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
