// Package logger is the structured diagnostics channel of brandgen. Lint
// reports and generated files go to stdout; everything logged here goes to
// stderr so it never mixes with machine readable output.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	Level         string // trace, debug, info, warn, error; empty means warn
	HumanReadable bool
	NoColor       bool
	Writer        io.Writer // defaults to os.Stderr
}

// Logger wraps zerolog with the handful of calls the commands need.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		console.NoColor = opts.NoColor
		output = console
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{base: ctx.Logger()}
}

// With is WithFields for a single field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level string) bool {
	if l == nil {
		return false
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return false
	}
	return parsed >= l.base.GetLevel()
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Info logs msg at info level.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error logs msg with err attached under the "error" key.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
