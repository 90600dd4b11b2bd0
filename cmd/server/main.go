package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/handler"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/metrics"
	"github.com/MKhiriev/go-qa-board/internal/server"
	"github.com/MKhiriev/go-qa-board/internal/service"
	"github.com/MKhiriev/go-qa-board/internal/store"
	"github.com/MKhiriev/go-qa-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	_ = build.Print(os.Stdout)

	log := logger.NewLogger("qa-board-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Stringer("db", cfg.Storage.DB).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	collector := metrics.NewCollector("qa_board")

	services, err := service.NewServices(storages, cfg.App, build, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.App, cfg.Server, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
