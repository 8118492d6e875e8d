package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/eslsoft/vocquiz/internal/entity"
)

const defaultSourceURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSu9lE7IWNrwypkuhQ2MmtGmfImmVVHW57GG4dE8ij5lP06SRhPPIHq5G5w_8NdIgN9-voL4kEMwzYS/pub?gid=520398043&single=true&output=csv"

// Config holds all configuration for our application
type Config struct {
	Source SourceConfig `mapstructure:"source"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Quiz   QuizConfig   `mapstructure:"quiz"`
	Speech SpeechConfig `mapstructure:"speech"`
	Log    LogConfig    `mapstructure:"log"`
}

// SourceConfig locates the published dictionary spreadsheet
type SourceConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig controls the local sqlite copy of the dictionary
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Offline bool   `mapstructure:"offline"`
}

// QuizConfig holds the initial session settings
type QuizConfig struct {
	Rounds                int    `mapstructure:"rounds"`
	Mode                  string `mapstructure:"mode"`
	DictationCount        int    `mapstructure:"dictation_count"`
	Sound                 bool   `mapstructure:"sound"`
	TestRange             string `mapstructure:"test_range"`
	Distribution          string `mapstructure:"distribution"`
	DictationDistribution string `mapstructure:"dictation_distribution"`
	Retention             int    `mapstructure:"retention"`
	Filter                string `mapstructure:"filter"`
}

// SpeechConfig describes the external text-to-speech command
type SpeechConfig struct {
	Command   string `mapstructure:"command"`
	VoiceFlag string `mapstructure:"voice_flag"`
	Language  string `mapstructure:"language"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.SetEnvPrefix("vocquiz")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Cache.Enabled && config.Cache.Path == "" {
		config.Cache.Path = defaultCachePath()
	}
	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Source defaults
	viper.SetDefault("source.url", defaultSourceURL)
	viper.SetDefault("source.timeout", 30*time.Second)

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.path", "")
	viper.SetDefault("cache.offline", false)

	// Quiz defaults
	viper.SetDefault("quiz.rounds", 20)
	viper.SetDefault("quiz.mode", string(entity.ModeRandom))
	viper.SetDefault("quiz.dictation_count", 10)
	viper.SetDefault("quiz.sound", false)
	viper.SetDefault("quiz.test_range", "all")
	viper.SetDefault("quiz.distribution", "sigmoide_i")
	viper.SetDefault("quiz.dictation_distribution", "sigmoide_i")
	viper.SetDefault("quiz.retention", entity.DefaultRetention)
	viper.SetDefault("quiz.filter", "")

	// Speech defaults
	viper.SetDefault("speech.command", "espeak-ng")
	viper.SetDefault("speech.voice_flag", "-v")
	viper.SetDefault("speech.language", string(entity.LanguageChinese))

	// Log defaults
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "vocquiz", "dictionary.db")
}

// Settings turns the quiz section into validated session settings.
func (c *Config) Settings() (entity.Settings, error) {
	s := entity.DefaultSettings()
	assignments := []string{
		fmt.Sprintf("%s=%t", entity.SettingSound, c.Quiz.Sound),
		fmt.Sprintf("%s=%s", entity.SettingTestRange, c.Quiz.TestRange),
		fmt.Sprintf("%s=%s", entity.SettingDistribution, c.Quiz.Distribution),
		fmt.Sprintf("%s=%s", entity.SettingDictationDistribution, c.Quiz.DictationDistribution),
		fmt.Sprintf("%s=%d", entity.SettingRetention, c.Quiz.Retention),
		fmt.Sprintf("%s=%s", entity.SettingLanguage, c.Speech.Language),
		fmt.Sprintf("%s=%s", entity.SettingFilter, c.Quiz.Filter),
	}
	for _, a := range assignments {
		if err := s.Set(a); err != nil {
			return entity.Settings{}, fmt.Errorf("config quiz settings: %w", err)
		}
	}
	return s, nil
}
