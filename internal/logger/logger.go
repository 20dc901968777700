package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging keyed by component name
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component, message string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewWithOutput writes console lines, or JSON when useJSON is set, to out.
func NewWithOutput(out io.Writer, level zerolog.Level, useJSON bool) *ZerologAdapter {
	if useJSON {
		return NewZerolog(out, level)
	}
	return NewZerolog(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}, level)
}

// New logs to stdout.
func New(level zerolog.Level, useJSON bool) *ZerologAdapter {
	return NewWithOutput(os.Stdout, level, useJSON)
}

// ParseLevel maps debug|info|warn|error onto zerolog levels; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	emit(z.logger.Info(), component, message, fields)
}

// Error logs message with err attached under the "error" key. An empty
// message falls back to the error text.
func (z *ZerologAdapter) Error(component, message string, err error, fields map[string]interface{}) {
	if message == "" && err != nil {
		message = err.Error()
	}
	emit(z.logger.Error().Err(err), component, message, fields)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	emit(z.logger.Warn(), component, message, fields)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	emit(z.logger.Debug(), component, message, fields)
}

func emit(event *zerolog.Event, component, message string, fields map[string]interface{}) {
	event.Str("component", component).Fields(fields).Msg(message)
}

// NoOpLogger discards everything; used by tests and headless tooling
type NoOpLogger struct{}

func (NoOpLogger) Info(component, message string, fields map[string]interface{})             {}
func (NoOpLogger) Error(component, message string, err error, fields map[string]interface{}) {}
func (NoOpLogger) Warning(component, message string, fields map[string]interface{})          {}
func (NoOpLogger) Debug(component, message string, fields map[string]interface{})            {}
