package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bnema/meikai/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestStartupTimer_Mark(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	timer := newStartupTimer(clock.now)

	clock.advance(10 * time.Millisecond)
	timer.Mark("config")
	clock.advance(5 * time.Millisecond)
	timer.Mark("host")
	timer.MarkDuration("schema", 3*time.Millisecond)

	got, ok := timer.Phase("config")
	require.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, got)

	got, ok = timer.Phase("host")
	require.True(t, ok)
	assert.Equal(t, 5*time.Millisecond, got)

	got, ok = timer.Phase("schema")
	require.True(t, ok)
	assert.Equal(t, 3*time.Millisecond, got)

	_, ok = timer.Phase("missing")
	assert.False(t, ok)

	assert.Equal(t, 15*time.Millisecond, timer.Total())
}

func TestStartupTimer_Log(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	timer := newStartupTimer(clock.now)
	clock.advance(2 * time.Millisecond)
	timer.Mark("config")

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))
	timer.Log(ctx, zerolog.InfoLevel)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "startup timing", record["message"])
	assert.Equal(t, "info", record["level"])
	assert.InDelta(t, 2.0, record["config"], 0.001)
	assert.InDelta(t, 2.0, record["total"], 0.001)
}
