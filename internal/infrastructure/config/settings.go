package config

import (
	"time"

	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/logging"
)

// ShellSettings maps the configuration onto the use case settings.
func (c *Config) ShellSettings() usecase.ShellSettings {
	return usecase.ShellSettings{
		WindowTitle:        c.Window.Title,
		TitleBarHeight:     c.Window.TitleBarHeight,
		Sizing:             c.Window.Sizing.toEntity(),
		PanelSizing:        c.Panel.Sizing.toEntity(),
		MaxPopupDepth:      c.Window.MaxPopupDepth,
		AutoStartMonitor:   c.URLMonitor.AutoStart,
		DevTools:           c.Debug.EnableDevTools,
		DefaultSearch:      c.Search.DefaultEngine,
		SearchShortcuts:    c.ShortcutURLs(),
		SuggestionsEnabled: c.Search.Suggestions.Enabled,
		MaxSuggestions:     c.Search.Suggestions.MaxResults,
		QuickLinksLimit:    c.Panel.QuickLinksLimit,
	}
}

// PollInterval returns the URL monitor tick.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.URLMonitor.PollIntervalMs) * time.Millisecond
}

// SuggestTimeout returns the suggestion request timeout.
func (c *Config) SuggestTimeout() time.Duration {
	return time.Duration(c.Search.Suggestions.TimeoutMs) * time.Millisecond
}

// LoggerConfig returns the logger configuration for the console sink.
// The file sink is attached by the caller.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if level, ok := logging.ParseLevel(c.Logging.Level); ok {
		cfg.Level = level
	}
	cfg.Format = c.Logging.Format
	return cfg
}

// RotatorConfig returns the file sink configuration.
func (c *Config) RotatorConfig() logging.RotatorConfig {
	return logging.RotatorConfig{
		Dir:        c.Logging.LogDir,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
		Compress:   c.Logging.Compress,
	}
}

func (s SizingConfig) toEntity() entity.SizingConfig {
	return entity.SizingConfig{
		Mode:           entity.SizingMode(s.Mode),
		Width:          s.Width,
		Height:         s.Height,
		WidthPercent:   s.WidthPercent,
		HeightPercent:  s.HeightPercent,
		AspectWidth:    s.AspectWidth,
		AspectHeight:   s.AspectHeight,
		FallbackWidth:  s.FallbackWidth,
		FallbackHeight: s.FallbackHeight,
	}
}
