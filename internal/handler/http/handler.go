package http

import (
	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/models"
)

type Handler struct {
	config    ConfigReader
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(config ConfigReader, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		config:    config,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
