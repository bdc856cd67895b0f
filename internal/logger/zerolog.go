package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger writes component-tagged structured events.
type Logger struct {
	logger zerolog.Logger
}

func New(writer io.Writer, level zerolog.Level) *Logger {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{logger: logger}
}

// NewConsole logs human-readable lines to stderr.
func NewConsole(level zerolog.Level) *Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return New(consoleWriter, level)
}

func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (l *Logger) Debug(component, message string, fields map[string]interface{}) {
	l.emit(l.logger.Debug(), component, message, fields)
}

func (l *Logger) Info(component, message string, fields map[string]interface{}) {
	l.emit(l.logger.Info(), component, message, fields)
}

func (l *Logger) Warning(component, message string, fields map[string]interface{}) {
	l.emit(l.logger.Warn(), component, message, fields)
}

func (l *Logger) Error(component string, err error, fields map[string]interface{}) {
	l.emit(l.logger.Error().Err(err), component, "operation failed", fields)
}

func (l *Logger) emit(event *zerolog.Event, component, message string, fields map[string]interface{}) {
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
