// Package config also keeps the lightweight environment bootstrap that runs
// before the Viper configuration is available.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is the process-wide logrus instance configured from the
	// environment. Commands normally use the container's Logger instead.
	Logger = logrus.New()
)

// LoadEnv loads variables from a .env file if one is present. Missing files
// are fine; explicit environment variables always win.
func LoadEnv() {
	once.Do(func() {
		if _, err := os.Stat(".env"); err == nil {
			_ = godotenv.Load(".env")
		}
	})
}

// ConfigureLogging sets up the global logger from LOG_LEVEL and LOG_FORMAT
// environment variables and returns it.
func ConfigureLogging() *logrus.Logger {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", logLevelStr)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}
