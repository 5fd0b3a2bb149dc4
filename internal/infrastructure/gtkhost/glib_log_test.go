package gtkhost

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGLibLevel(t *testing.T) {
	tests := []struct {
		flags int
		want  zerolog.Level
	}{
		{glibLevelError, zerolog.ErrorLevel},
		{glibLevelCritical, zerolog.ErrorLevel},
		{glibLevelWarning, zerolog.WarnLevel},
		{glibLevelMessage, zerolog.InfoLevel},
		{glibLevelInfo, zerolog.InfoLevel},
		{glibLevelDebug, zerolog.DebugLevel},
		{glibLevelWarning | 1, zerolog.WarnLevel},
		{0, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, glibLevel(tt.flags), "flags %b", tt.flags)
	}
}

func TestLogGLib(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logGLib(&logger, glibLevelWarning, "Gtk", "widget is not realized")

	assert.JSONEq(t, `{"level":"warn","glib_domain":"Gtk","message":"widget is not realized"}`, buf.String())
}
