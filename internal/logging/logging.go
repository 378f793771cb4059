// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Level string
	// File, when set, receives a copy of everything written to stdout.
	File string
	// JSON switches to the JSON formatter for log shippers.
	JSON bool
	// Stdout overrides os.Stdout; tests only.
	Stdout io.Writer
}

// New returns the logger and a close func for the optional log file.
// An unknown level falls back to info.
func New(opts Options) (*logrus.Logger, func() error, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	closeFn := func() error { return nil }
	writers := []io.Writer{stdout}
	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closeFn = f.Close
	}
	log.SetOutput(io.MultiWriter(writers...))
	return log, closeFn, nil
}
