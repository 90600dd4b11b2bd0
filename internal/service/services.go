package service

import (
	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/metrics"
	"github.com/MKhiriev/go-qa-board/internal/store"
	"github.com/MKhiriev/go-qa-board/models"
)

type Services struct {
	QuestionService QuestionService
	AnswerService   AnswerService
	AuthorService   AuthorService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, build models.AppBuildInfo, collector *metrics.Collector, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	authorService, err := NewAuthorService(storages.UserRepository, cfg, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		QuestionService: NewQuestionService(storages.QuestionRepository, storages.AnswerRepository, collector, logger),
		AnswerService:   NewAnswerService(storages.QuestionRepository, storages.AnswerRepository, authorService, collector, logger),
		AuthorService:   authorService,
		AppInfoService:  appInfoService,
	}, nil
}
