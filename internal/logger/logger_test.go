package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestZerologAdapterTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("ConfigStore", "settings saved", map[string]interface{}{"path": "/tmp/notepad.ini"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ConfigStore", entry["component"])
	assert.Equal(t, "settings saved", entry["message"])
	assert.Equal(t, "/tmp/notepad.ini", entry["path"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Interceptor", "key pressed", nil)
	log.Info("Interceptor", "key pressed", nil)
	assert.Zero(t, buf.Len())

	log.Error("MainController", errors.New("disk full"), nil)
	assert.Contains(t, buf.String(), "disk full")
}

func TestZerologAdapterErrorEntry(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("ConfigStore", errors.New("permission denied"), map[string]interface{}{"title": "Settings not saved"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, ErrorMessage, entry["message"])
	assert.Equal(t, "permission denied", entry["error"])
	assert.Equal(t, "Settings not saved", entry["title"])
}

var _ Logger = (*ZerologAdapter)(nil)
var _ Logger = NoOpLogger{}
