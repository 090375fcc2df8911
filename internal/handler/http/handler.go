package http

import (
	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/service"
)

type Handler struct {
	services *service.Services

	// uploadsDir is the directory served under /uploads/*. Profile and post
	// images referenced by stored records resolve against it.
	uploadsDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, uploadsDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		uploadsDir: uploadsDir,
		logger:     logger,
	}
}
