package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-geo-toolkit/internal/config"
	"github.com/MKhiriev/go-geo-toolkit/internal/featureserver"
	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("featureserver")
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env file")
	}
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.HTTPAddress).Bool("auth", cfg.Token != "").Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := featureserver.NewHandler(featureserver.NewDemoStore(), cfg.Token, log)
	server := featureserver.NewServer(handler, *cfg, log)

	if err = server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("feature server error")
	}
}
