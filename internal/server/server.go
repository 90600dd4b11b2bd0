package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/handler"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/metrics"
)

type server struct {
	servers []*httpServer
	logger  *logger.Logger
}

// NewServer creates the API server and, when cfg.MetricsAddress is set,
// the metrics server.
func NewServer(handlers *handler.Handlers, cfg config.Server, collector *metrics.Collector, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		s.servers = append(s.servers, newHTTPServer("api", cfg.HTTPAddress, handlers.HTTP.Init(), cfg.RequestTimeout, logger))
	}
	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	if cfg.MetricsAddress != "" && collector != nil {
		s.servers = append(s.servers, newHTTPServer("metrics", cfg.MetricsAddress, newMetricsRouter(collector), 0, logger))
	}

	return s, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or a listener
// fails, then shuts every server down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, srv := range s.servers {
		srv.shutdown()
	}
}

func (s *server) run(ctx context.Context) error {
	if len(s.servers) == 0 {
		return errNoServersToRun
	}

	errCh := make(chan error, len(s.servers))
	for _, srv := range s.servers {
		srv := srv
		go func() {
			errCh <- srv.listenAndServe()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
