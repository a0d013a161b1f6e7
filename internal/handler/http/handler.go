package http

import (
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/config"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/service"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/store"
)

type Handler struct {
	services *service.Services

	// db is held for the health endpoint's liveness ping only; all data
	// access goes through the services.
	db *store.DB

	cfg *config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, db *store.DB, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		db:       db,
		cfg:      cfg,
		logger:   logger,
	}
}
