// Package logger builds the process logger from config.LogConfig.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/automoto/pingpong/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing JSON to a rotating file when cfg.File is set,
// and text to stderr otherwise.
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(level)

	if cfg.File == "" {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return log, nil
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, nil
}

// Session returns an entry tagged with a fresh session id, so that all lines
// from one run can be grouped.
func Session(log *logrus.Logger) *logrus.Entry {
	return log.WithField("session", uuid.NewString())
}

// Close flushes and closes the log file, if any.
func Close(log *logrus.Logger) error {
	if c, ok := log.Out.(io.Closer); ok && log.Out != os.Stderr {
		return c.Close()
	}
	return nil
}

func parseLevel(name string) (logrus.Level, error) {
	if name == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(strings.ToLower(name))
	if err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
