package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocquiz/internal/adapter/repository"
	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/internal/infrastructure/config"
	"github.com/eslsoft/vocquiz/internal/infrastructure/speech"
	"github.com/eslsoft/vocquiz/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Repository *repository.CachedRepository
	Quiz       usecase.QuizUsecase
	Speaker    speech.Speaker
}

func provideSettings(cfg *config.Config) (entity.Settings, error) {
	return cfg.Settings()
}
