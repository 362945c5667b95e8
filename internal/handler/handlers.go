package handler

import (
	"github.com/MKhiriev/go-env-overlay/internal/config"
	"github.com/MKhiriev/go-env-overlay/internal/handler/http"
	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg.
func NewHandlers(reader http.ConfigReader, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(reader, buildInfo, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
