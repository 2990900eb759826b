package logger

import (
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

// ParseLevel maps a settings-file level name to a zerolog level, falling back to info
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// NoOpLogger discards everything; used by tests
type NoOpLogger struct{}

func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
