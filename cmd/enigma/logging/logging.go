package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/sergeii/enigma/pkg/logutils"
)

var (
	ErrInvalidLogOutput = errors.New("logging: unknown output format")
	ErrInvalidLogLevel  = errors.New("logging: unknown level")
)

type Config struct {
	LogOutput string
	LogLevel  string
	// Command is attached to every log line, e.g. "serve api"
	Command string
	// Sink overrides the process streams, stdout and stderr alike
	Sink io.Writer
}

type Result struct {
	fx.Out

	Logger   *zerolog.Logger
	LogLevel zerolog.Level
}

// Provide builds the application logger.
// Everything except the "stdout" output writes to stderr, stdout carries command results.
func Provide(cfg Config) (Result, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	zerolog.DurationFieldUnit = time.Second
	zerolog.CallerMarshalFunc = logutils.ShortCallerFormatter

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	output, err := newOutput(cfg)
	if err != nil {
		return Result{}, err
	}

	lctx := zerolog.New(output).Level(lvl).With().Timestamp().Caller()
	if cfg.Command != "" {
		lctx = lctx.Str("cmd", cfg.Command)
	}
	logger := lctx.Logger()

	return Result{
		Logger:   &logger,
		LogLevel: lvl,
	}, nil
}

func newOutput(cfg Config) (io.Writer, error) {
	stdout, stderr := io.Writer(os.Stdout), io.Writer(os.Stderr)
	if cfg.Sink != nil {
		stdout, stderr = cfg.Sink, cfg.Sink
	}
	switch cfg.LogOutput {
	case "console", "":
		return zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339, NoColor: cfg.Sink != nil}, nil
	case "stdout":
		return zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "stderr":
		return zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "json":
		return stderr, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, cfg.LogOutput)
	}
}

func NoGlobal() {
	log.Logger = zerolog.Nop()
}

// FxLogger reports container events only when debugging.
func FxLogger(logger *zerolog.Logger, lvl zerolog.Level) fxevent.Logger {
	if lvl > zerolog.DebugLevel {
		return fxevent.NopLogger
	}
	return &fxevent.ConsoleLogger{
		W: logger,
	}
}
