package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocquiz/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "debug", Format: "json"}}
	l, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	cfg.Log.Level = "loud"
	_, err = New(cfg)
	assert.Error(t, err)
}
