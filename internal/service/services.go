package service

import (
	"github.com/adilzhm/travel-diary/internal/config"
	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/store"
)

type Services struct {
	AuthService  AuthService
	DiaryService DiaryService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	diary := NewDiaryService(
		storages.UserRepository,
		storages.PostRepository,
		storages.TripRepository,
		logger,
	)

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		DiaryService: NewDiaryValidationService().Wrap(diary),
	}
}
