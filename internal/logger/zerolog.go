package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ErrorMessage is the message attached to every Error entry; the error itself goes in the error field
const ErrorMessage = "operation failed"

// ZerologAdapter implements Logger on top of a zerolog.Logger
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerolog writes JSON lines at or above level to writer
func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{
		logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

// NewConsoleLogger writes human-readable lines to stdout
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	return NewZerolog(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}, level)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	emit(z.logger.Info(), component, fields, message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	emit(z.logger.Error().Err(err), component, fields, ErrorMessage)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	emit(z.logger.Warn(), component, fields, message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	emit(z.logger.Debug(), component, fields, message)
}

// emit is a no-op for disabled levels, where zerolog hands back a nil event
func emit(event *zerolog.Event, component string, fields map[string]interface{}, message string) {
	if event == nil {
		return
	}
	event.Str("component", component).Fields(fields).Msg(message)
}
