package handler

import (
	"github.com/adilzhm/travel-diary/internal/config"
	"github.com/adilzhm/travel-diary/internal/handler/http"
	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Storage.Files.UploadsDir, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
