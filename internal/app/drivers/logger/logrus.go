package logger

import (
	"os"

	"campuscare-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger backs the access log. Production appends JSON lines to a
// file; every other environment keeps readable text on stderr.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()

	if internalConfig.App.Env != "production" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return logger
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile("access.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Warn("access log file unavailable, keeping stderr")
		return logger
	}
	logger.SetOutput(file)
	return logger
}
