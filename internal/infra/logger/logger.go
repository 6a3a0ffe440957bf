// internal/infra/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Entries go to stdout and to cfg.LogFile,
// which is truncated on every start. The returned closer releases the file.
func New(cfg *config.AppConfig) (*logrus.Logger, io.Closer, error) {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *config.AppConfig, console io.Writer) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	var closer io.Closer = nopCloser{}
	out := console
	if strings.TrimSpace(cfg.LogFile) != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		out = io.MultiWriter(console, file)
		closer = file
	}
	log.SetOutput(out)

	// Set Log Level
	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.LogLevel, err)
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(level)
	}

	// Set Log Formatter
	if cfg.Environment == "production" || cfg.Environment == "staging" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else {
		// Same bytes go to the file, so no color codes.
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   true,
		})
	}

	log.Debugf("Logger initialized. Level: %s, environment: %s, file: %q", log.GetLevel(), cfg.Environment, cfg.LogFile)
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
