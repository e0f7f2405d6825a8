// Package server exposes the revenue engine as a JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rgehrsitz/creatorcalc/internal/config"
	"go.uber.org/zap"
)

// DefaultShutdownTimeout bounds graceful shutdown when the config sets none
const DefaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zap.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Calculator Calculator
	Goals      GoalSolver
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Defaults        config.DefaultsConfig
	Dependencies    Dependencies
}

func NewWebAPI(logger *zap.Logger, cfg Config) *WebAPI {
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := NewHandler(cfg.Dependencies.Calculator, cfg.Dependencies.Goals, cfg.Defaults)

	router := chi.NewRouter()
	router.Use(RequestID)
	router.Use(Logger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", handler.Health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/platforms", handler.ListPlatforms)
		r.Get("/platforms/{id}", handler.GetPlatform)
		r.Get("/regions", handler.ListRegions)
		r.Get("/niches", handler.ListNiches)
		r.Get("/time-periods", handler.ListTimePeriods)

		r.Post("/calculate", handler.Calculate)
		r.Post("/scenarios/run", handler.RunScenarios)
		r.Post("/sponsorship", handler.PriceSponsorship)
		r.Post("/goal", handler.SolveGoal)
		r.Post("/plan", handler.ProjectPlan)
		r.Post("/mix", handler.SimulateMix)
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: logger,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: timeout,
	}
}

// Handler returns the routed API, for tests and embedding
func (w *WebAPI) Handler() http.Handler {
	return w.router
}

// Start serves until the server fails, ctx is cancelled, or the process receives SIGINT
// or SIGTERM. Shutdown waits up to the configured timeout for in-flight requests.
func (w *WebAPI) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		w.logger.Info("starting server", zap.String("addr", w.server.Addr))
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		w.logger.Info("shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(shutdownCtx)
		if err != nil {
			w.logger.Error("graceful shutdown failed", zap.Error(err))
			err = w.server.Close()
		}
		return err
	}
}
