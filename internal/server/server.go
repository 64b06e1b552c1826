package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/city-team-dashboard/internal/config"
	"github.com/preston-bernstein/city-team-dashboard/internal/dashboard"
	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	httpserver "github.com/preston-bernstein/city-team-dashboard/internal/http"
	"github.com/preston-bernstein/city-team-dashboard/internal/http/handlers"
	"github.com/preston-bernstein/city-team-dashboard/internal/http/middleware"
	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
	"github.com/preston-bernstein/city-team-dashboard/internal/metrics"
	"github.com/preston-bernstein/city-team-dashboard/internal/poller"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
	"github.com/preston-bernstein/city-team-dashboard/internal/setup"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	refresher     Refresher
	flow          *setup.Flow
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	closePrefs    func() error
}

// New constructs a server with the configured sources and preference slot.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithSources(cfg config.Config, logger *slog.Logger, sources *providers.Sources) *Server {
	return newServerWithMetrics(cfg, logger, sources, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, sources *providers.Sources, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	var src providers.Sources
	if sources != nil {
		src = *sources
	} else {
		src = newSourceFactory(logger, recorder).build(cfg)
	}

	store, closePrefs := buildPreferences(cfg, logger)
	orch := dashboard.New(src, nil, logger, recorder)
	flow := setup.New(store, orch, logger)
	ticker := poller.New(func() uint64 { return orch.Trigger(flow.Preference()) }, logger, cfg.RefreshInterval)
	httpSrv := buildHTTPServer(cfg, orch, flow, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		refresher:     orch,
		flow:          flow,
		poller:        ticker,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		closePrefs:    closePrefs,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, flow *setup.Flow, httpSrv httpServer, refresher Refresher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		refresher:  refresher,
		flow:       flow,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, orch *dashboard.Orchestrator, flow *setup.Flow, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(orch.Store(), flow, logger, orch.Status)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.Recoverer(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers and the initial refresh, then waits for ctx to end and shuts down.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.startDashboard()
	if s.poller != nil {
		s.poller.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startDashboard() {
	if s.flow != nil {
		s.flow.Start()
		return
	}
	if s.refresher != nil {
		s.refresher.Trigger(domain.Preference{})
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "refresh poller stop failed", "error", err)
		}
	}

	if s.refresher != nil {
		s.refresher.Close()
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.closePrefs != nil {
		if err := s.closePrefs(); err != nil {
			logging.Warn(s.logger, "preference slot close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
