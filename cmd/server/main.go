package main

import (
	"context"
	"fmt"
	"time"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/adapter"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/config"
	handlerhttp "github.com/PRATYUSH213S/True-Drive-Rentals/internal/handler/http"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/server"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/service"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("rentals-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.UsingDefaultTokenSignKey() {
		log.Warn().Msg("token signing key is using the insecure default - set AUTH_TOKEN_SIGN_KEY for production")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	provider := adapter.NewStripeProvider(adapter.StripeConfig{
		SecretKey: cfg.Payments.StripeSecretKey,
	}, log)

	services := service.NewServices(storages, provider, cfg, log)

	handler := handlerhttp.NewHandler(services, db, cfg, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.Run()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
