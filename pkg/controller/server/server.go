package server

import (
	"context"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/repostream/pkg/domain/interfaces"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/utils/errutil"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

type Server struct {
	mux    *chi.Mux
	worker *updateWorker
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret  types.GitHubAppSecret
	dryRun    bool
	queueSize int
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithDryRun makes updates triggered by webhooks commit locally only.
func WithDryRun(dryRun bool) Option {
	return func(cfg *config) {
		cfg.dryRun = dryRun
	}
}

// WithQueueSize sets how many webhook-triggered updates may wait. A request arriving while the
// queue is full gets 503.
func WithQueueSize(size int) Option {
	return func(cfg *config) {
		cfg.queueSize = size
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{queueSize: defaultQueueSize}
	for _, opt := range options {
		opt(cfg)
	}
	worker := newUpdateWorker(uc, cfg.queueSize)

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
			input, err := parseGitHubEvent(r, cfg.ghSecret)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to handle GitHub event", err)
				if errors.Is(err, types.ErrValidationFailed) {
					safeWrite(w, http.StatusBadRequest, []byte(`{"status":"error","message":"invalid payload"}`))
				} else {
					safeWrite(w, http.StatusInternalServerError, []byte(`{"status":"error"}`))
				}
				return
			}

			if input == nil {
				safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"no update required"}`))
				return
			}
			input.DryRun = cfg.dryRun

			// The request context is cancelled once the response is sent
			if !worker.enqueue(DetachContext(r.Context()), input) {
				logging.From(r.Context()).Warn("Update queue is not available", slog.String("repo", input.Repo.FullName()))
				safeWrite(w, http.StatusServiceUnavailable, []byte(`{"status":"error","message":"update queue is full"}`))
				return
			}

			safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"update enqueued"}`))
		})
	})

	return &Server{
		mux:    r,
		worker: worker,
	}
}

// Shutdown waits for webhook-triggered updates. Call it after the HTTP server stopped
// accepting requests.
func (x *Server) Shutdown(ctx context.Context) error {
	return x.worker.shutdown(ctx)
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
