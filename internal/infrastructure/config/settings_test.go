package config

import (
	"testing"
	"time"

	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestShellSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.TitleBarHeight = 28
	cfg.Debug.EnableDevTools = true

	s := cfg.ShellSettings()

	assert.Equal(t, 28, s.TitleBarHeight)
	assert.True(t, s.DevTools)
	assert.Equal(t, entity.SizingPercent, s.Sizing.Mode)
	assert.Equal(t, entity.SizingAspect, s.PanelSizing.Mode)
	assert.InDelta(t, 0.47, s.PanelSizing.WidthPercent, 1e-9)
	assert.Equal(t, "https://github.com/search?q=%s", s.SearchShortcuts["gh"])
	assert.Equal(t, 5, s.MaxSuggestions)
	assert.Equal(t, 8, s.MaxPopupDepth)

	// Resolved sizes match the built-in defaults.
	monitor := entity.Size{Width: 1920, Height: 1080}
	assert.Equal(t, entity.Size{Width: 1402, Height: 799}, entity.ResolveWindowSize(&monitor, s.Sizing))
	assert.Equal(t, entity.Size{Width: 902, Height: 601}, entity.ResolveWindowSize(&monitor, s.PanelSizing))
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 300*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 3*time.Second, cfg.SuggestTimeout())
}

func TestLoggerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "warn"
	cfg.Logging.Format = "json"

	lc := cfg.LoggerConfig()
	assert.Equal(t, zerolog.WarnLevel, lc.Level)
	assert.Equal(t, "json", lc.Format)

	rc := cfg.RotatorConfig()
	assert.Equal(t, cfg.Logging.LogDir, rc.Dir)
	assert.Equal(t, 10, rc.MaxSizeMB)
}
