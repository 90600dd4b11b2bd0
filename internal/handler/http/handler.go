package http

import (
	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/metrics"
	"github.com/MKhiriev/go-qa-board/internal/service"
	"github.com/MKhiriev/go-qa-board/internal/utils"
)

type Handler struct {
	services *service.Services

	apiKey      string
	corsOrigins []string
	metrics     *metrics.Collector
	traceIDs    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, serverCfg config.Server, collector *metrics.Collector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		apiKey:      appCfg.APIKey,
		corsOrigins: serverCfg.CORSAllowedOrigins,
		metrics:     collector,
		traceIDs:    utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
