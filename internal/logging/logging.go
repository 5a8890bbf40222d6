package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const logFileName = "pptmcp.log"

type FileLogger struct {
	Logger  *slog.Logger
	Close   func() error
	Path    string
	Enabled bool
}

func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func NewFileLogger(dataDir string, enabled bool) (FileLogger, error) {
	if !enabled {
		return FileLogger{Logger: Nop(), Close: func() error { return nil }, Enabled: false}, nil
	}
	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return FileLogger{Logger: Nop(), Close: func() error { return nil }, Enabled: false}, err
	}
	path := filepath.Join(logDir, logFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return FileLogger{Logger: Nop(), Close: func() error { return nil }, Enabled: false}, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})
	logger := slog.New(handler)
	return FileLogger{
		Logger:  logger,
		Close:   file.Close,
		Path:    path,
		Enabled: true,
	}, nil
}

type Options struct {
	// Console receives human-readable logs. Nil means os.Stderr.
	Console io.Writer
	DataDir string
	Debug   bool
	// File enables the JSON log under DataDir. Debug implies it.
	File bool
}

// New returns a logger writing text to the console and, when enabled, JSON
// to <DataDir>/logs/pptmcp.log. A log file that cannot be opened is reported
// but does not prevent console logging.
func New(opts Options) (FileLogger, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{Level: level})

	file, err := NewFileLogger(opts.DataDir, opts.File || opts.Debug)
	if err != nil || !file.Enabled {
		return FileLogger{Logger: slog.New(consoleHandler), Close: file.Close}, err
	}
	return FileLogger{
		Logger:  slog.New(fanout{consoleHandler, file.Logger.Handler()}),
		Close:   file.Close,
		Path:    file.Path,
		Enabled: true,
	}, nil
}

// fanout sends every record to each handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
