package handler

import (
	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/handler/http"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/metrics"
	"github.com/MKhiriev/go-qa-board/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, appCfg config.App, serverCfg config.Server, collector *metrics.Collector, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if serverCfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if appCfg.APIKey == "" {
		return nil, errAPIKeyIsNotSet
	}

	return &Handlers{
		HTTP: http.NewHandler(services, appCfg, serverCfg, collector, logger),
	}, nil
}
