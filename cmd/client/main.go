package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-geo-toolkit/internal/adapter"
	"github.com/MKhiriev/go-geo-toolkit/internal/client"
	"github.com/MKhiriev/go-geo-toolkit/internal/config"
	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/service"
	"github.com/MKhiriev/go-geo-toolkit/internal/store"
	"github.com/MKhiriev/go-geo-toolkit/internal/tui"
	"github.com/MKhiriev/go-geo-toolkit/internal/workers"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	// a .env file in the working directory, if any, seeds the environment
	_ = godotenv.Load()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewClientLogger("geo-edit-client", cfg.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serviceAdapter, err := adapter.NewHTTPFeatureServiceAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create feature service adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serviceAdapter, cfg.Adapter.IdentifyTolerance, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, storages.EditRepository, serviceAdapter, ui,
		workers.NewClientWorkers(services, cfg.Workers, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		storages.Close()
		os.Exit(1)
	}
}
