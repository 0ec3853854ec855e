package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging tagged with the emitting component
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// Options selects the output format and verbosity of a logger built by New.
type Options struct {
	Level  string
	JSON   bool
	Writer io.Writer
}

// New builds a zerolog-backed Logger. Unknown levels fall back to info.
func New(opts Options) Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	if opts.JSON {
		return NewZerolog(writer, level)
	}
	return NewZerolog(zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05"}, level)
}

// NoOpLogger discards everything; used by tests and the list command.
type NoOpLogger struct{}

func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
