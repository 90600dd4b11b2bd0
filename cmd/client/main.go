package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qa-board/internal/adapter"
	"github.com/MKhiriev/go-qa-board/internal/client"
	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("qa-board-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Args) == 1 && cfg.Args[0] == "build-info" {
		_ = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app := client.NewApp(serverAdapter, cfg.Args, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
