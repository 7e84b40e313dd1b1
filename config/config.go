package config

import (
	"os"
	"strconv"
)

type ConfigStruct struct {
	Options Options
	Sentry  SentryConfig
	Youtube YoutubeConfig
	Storage StorageConfig
}

type Options struct {
	Port string
	// DefaultOrigin is the trusted origin the harness associates with the
	// embed pages it serves.
	DefaultOrigin string
	HistoryLimit  int
}

type SentryConfig struct {
	DSN string
}

type YoutubeConfig struct {
	// APIKey enables title lookups through the Data API. Optional; the
	// harness degrades to bare video ids when unset.
	APIKey string
}

type StorageConfig struct {
	DBPath string
}

func (s *SentryConfig) IsEnabled() bool {
	return s.DSN != ""
}

func (y *YoutubeConfig) IsEnabled() bool {
	return y.APIKey != ""
}

var Config *ConfigStruct

func NewConfig() {
	config := &ConfigStruct{
		Options: Options{
			Port:          os.Getenv("PORT"),
			DefaultOrigin: getDefaultOrigin(),
			HistoryLimit:  getHistoryLimit(),
		},
		Sentry: SentryConfig{
			DSN: os.Getenv("SENTRY_DSN"),
		},
		Youtube: YoutubeConfig{
			APIKey: os.Getenv("YOUTUBE_API_KEY"),
		},
		Storage: StorageConfig{
			DBPath: os.Getenv("DB_PATH"),
		},
	}

	Config = config
}

func getDefaultOrigin() string {
	origin := os.Getenv("DEFAULT_ORIGIN")
	if origin == "" {
		return "http://localhost"
	}
	return origin
}

func getHistoryLimit() int {
	limitStr := os.Getenv("HISTORY_LIMIT")
	if limitStr == "" {
		return 25
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 25
	}
	if limit > 100 {
		return 100 // Cap to keep the history page bounded
	}
	return limit
}
