package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zerolog.Level
		wantOK bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{" warn ", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"verbose", zerolog.InfoLevel, false},
		{"", zerolog.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNew_JSONWithFileSink(t *testing.T) {
	var out, file bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &out, File: &file})

	logger.Debug().Str("window_label", "window-1").Msg("created")

	for _, buf := range []*bytes.Buffer{&out, &file} {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "created", rec["message"])
		assert.Equal(t, "window-1", rec["window_label"])
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var out bytes.Buffer
	logger := New(Config{Level: zerolog.WarnLevel, Format: "json", Output: &out})

	logger.Info().Msg("hidden")
	assert.Zero(t, out.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("MEIKAI_LOG_LEVEL", "error")
	t.Setenv("MEIKAI_LOG_FORMAT", "json")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestContextHelpers(t *testing.T) {
	var out bytes.Buffer
	ctx := WithContext(context.Background(), New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &out}))
	ctx = WithComponent(ctx, "monitor")
	ctx = WithWindowLabel(ctx, "content-1")
	ctx = WithURL(ctx, "https://example.com")
	ctx = With(ctx, map[string]any{"depth": 2})

	FromContext(ctx).Info().Msg("tick")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "monitor", rec["component"])
	assert.Equal(t, "content-1", rec["window_label"])
	assert.Equal(t, "https://example.com", rec["url"])
	assert.EqualValues(t, 2, rec["depth"])
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}
