// Package logging builds the application logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/subosito/gotenv"
)

// LoadEnv reads a .env file into the environment if one exists. Variables
// already set are left alone.
func LoadEnv(path string) error {
	err := gotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// New returns a logger writing to out at the given level. APP_ENV=production
// switches to JSON output.
func New(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if strings.ToLower(os.Getenv("APP_ENV")) == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to a logrus level, defaulting to warn.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}
