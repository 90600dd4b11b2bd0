package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-qa-board/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// signal.
const shutdownTimeout = 10 * time.Second

type httpServer struct {
	name   string
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(name, address string, handler http.Handler, requestTimeout time.Duration, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       requestTimeout,
			WriteTimeout:      requestTimeout,
		},
		logger: logger,
	}
}

// listenAndServe blocks until the server stops. A stop caused by Shutdown
// is not an error.
func (h *httpServer) listenAndServe() error {
	h.logger.Info().Str("server", h.name).Str("address", h.server.Addr).Msg("launching HTTP server")

	err := h.server.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	h.logger.Err(err).Str("func", "*httpServer.listenAndServe").Str("server", h.name).Msg("HTTP server stopped unexpectedly")
	return fmt.Errorf("%s server: %w", h.name, err)
}

func (h *httpServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.shutdown").Str("server", h.name).Msg("error shutting down HTTP server")
		return
	}
	h.logger.Info().Str("server", h.name).Msg("HTTP server shut down")
}
