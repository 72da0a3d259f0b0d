package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger for application-wide logging.
//
// The CLI is silent by default: diagnostic output would corrupt the weather
// report on stdout. Debug mode turns on a console writer on stderr and,
// optionally, a log file.
type Logger struct {
	*zerolog.Logger
}

// Config holds logger configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Pretty     bool   // enable pretty console output
	OutputFile string // optional file output path
}

// New creates a new logger with the given configuration.
// All console output goes to stderr so stdout stays clean for the report.
func New(cfg Config) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stderr
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	// File output (optional). Failure to open the file is not fatal;
	// the logger falls back to stderr only.
	if cfg.OutputFile != "" {
		file, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			output = io.MultiWriter(output, file)
		}
	}

	l := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: &l}
}

// Disabled creates a logger that discards everything.
// Used when the CLI runs without --debug.
func Disabled() *Logger {
	l := zerolog.Nop()
	return &Logger{Logger: &l}
}

// WithComponent returns a logger with a component field.
func (l *Logger) WithComponent(component string) *Logger {
	nl := l.With().Str("component", component).Logger()
	return &Logger{Logger: &nl}
}

// TimeOp logs the start of a named operation at debug level and returns a
// function that logs its elapsed time when called. Intended for defer:
//
//	defer log.TimeOp("weather lookup")()
func (l *Logger) TimeOp(name string) func() {
	start := time.Now()
	l.Debug().Str("operation", name).Msg("Operation started")
	return func() {
		l.Debug().
			Str("operation", name).
			Dur("elapsed_ms", time.Since(start)).
			Msg("Operation completed")
	}
}
