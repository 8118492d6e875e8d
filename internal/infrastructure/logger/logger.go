package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocquiz/internal/infrastructure/config"
)

// New builds a configured logrus logger from application config.
// Logs go to stderr so they never interleave with quiz prompts on stdout.
func New(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	switch cfg.Log.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
