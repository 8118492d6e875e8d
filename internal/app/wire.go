//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocquiz/internal/adapter/repository"
	"github.com/eslsoft/vocquiz/internal/infrastructure/config"
	"github.com/eslsoft/vocquiz/internal/infrastructure/database"
	"github.com/eslsoft/vocquiz/internal/infrastructure/logger"
	"github.com/eslsoft/vocquiz/internal/infrastructure/speech"
	domain "github.com/eslsoft/vocquiz/internal/repository"
	"github.com/eslsoft/vocquiz/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
	provideSettings,
)

var loggerSet = wire.NewSet(
	logger.New,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
)

var databaseSet = wire.NewSet(
	database.NewSQLite,
)

var repositorySet = wire.NewSet(
	repository.NewSQLiteCache,
	repository.NewSpreadsheetRepository,
	repository.NewCachedRepository,
	wire.Bind(new(domain.DictionaryRepository), new(*repository.CachedRepository)),
)

var usecaseSet = wire.NewSet(
	usecase.NewQuizUsecase,
)

var speechSet = wire.NewSet(
	speech.New,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		loggerSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		speechSet,
		wire.Struct(new(Container), "Config", "Logger", "Repository", "Quiz", "Speaker"),
	)
	return nil, nil, nil
}
