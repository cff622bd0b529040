// Package logging configures the process-wide structured logger
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/misbaha/internal/osutil"
)

// Options holds logger configuration
type Options struct {
	// Path is the log file location. Logs are discarded when empty.
	Path  string
	Debug bool
	// Stderr receives a copy of every record in debug mode.
	Stderr io.Writer
}

// New builds a slog logger backed by a charmbracelet/log handler. Records are
// written to a size-rotated file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	var (
		writer io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)

	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission); err != nil {
			return nil, nil, err
		}

		fileWriter := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}

		writer = fileWriter
		closer = fileWriter
	}

	level := log.InfoLevel

	if opts.Debug {
		level = log.DebugLevel

		if opts.Stderr != nil {
			writer = io.MultiWriter(opts.Stderr, writer)
		}
	}

	handler := log.NewWithOptions(writer, log.Options{
		ReportCaller:    opts.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "misbaha",
	})

	return slog.New(handler), closer, nil
}

// Init builds a logger with New and installs it as the slog default.
func Init(opts Options) (io.Closer, error) {
	logger, closer, err := New(opts)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	return closer, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(log.New(io.Discard))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
