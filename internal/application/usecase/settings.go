package usecase

import (
	"time"

	"github.com/bnema/meikai/internal/domain/entity"
)

// DefaultTitleBarHeight is the title-bar height in pixels.
const DefaultTitleBarHeight = 20

// DefaultPollInterval is the URL monitor tick.
const DefaultPollInterval = 300 * time.Millisecond

// DefaultQuickLinksLimit caps quick links when settings leave it unset.
const DefaultQuickLinksLimit = 6

// ShellSettings is the subset of configuration read by the use cases.
// It is a domain-level type to avoid depending on infrastructure config.
type ShellSettings struct {
	WindowTitle    string
	TitleBarHeight int
	Sizing         entity.SizingConfig
	PanelSizing    entity.SizingConfig

	// MaxPopupDepth caps intercepted pop-up nesting, 0 means unlimited.
	MaxPopupDepth int

	AutoStartMonitor bool
	DevTools         bool

	DefaultSearch   string
	SearchShortcuts map[string]string

	SuggestionsEnabled bool
	MaxSuggestions     int

	// QuickLinksLimit caps the starred bookmarks returned as quick links.
	QuickLinksLimit int
}

// SettingsFunc returns the current settings. It is called on every
// operation so configuration reloads apply to the next window.
type SettingsFunc func() ShellSettings

// DefaultShellSettings returns the built-in settings.
func DefaultShellSettings() ShellSettings {
	return ShellSettings{
		WindowTitle:    "Meikai Browser",
		TitleBarHeight: DefaultTitleBarHeight,
		Sizing: entity.SizingConfig{
			Mode:           entity.SizingPercent,
			WidthPercent:   0.73,
			HeightPercent:  0.74,
			FallbackWidth:  entity.DefaultFallbackWidth,
			FallbackHeight: entity.DefaultFallbackHeight,
		},
		PanelSizing: entity.SizingConfig{
			Mode:           entity.SizingAspect,
			WidthPercent:   0.47,
			AspectWidth:    3,
			AspectHeight:   2,
			FallbackWidth:  entity.DefaultFallbackWidth,
			FallbackHeight: entity.DefaultFallbackHeight,
		},
		MaxPopupDepth:      8,
		AutoStartMonitor:   true,
		DefaultSearch:      "https://www.google.com/search?q=%s",
		SuggestionsEnabled: true,
		MaxSuggestions:     5,
		QuickLinksLimit:    DefaultQuickLinksLimit,
	}
}

// StaticSettings returns a SettingsFunc that always yields s.
func StaticSettings(s ShellSettings) SettingsFunc {
	return func() ShellSettings { return s }
}

func (f SettingsFunc) get() ShellSettings {
	if f == nil {
		return DefaultShellSettings()
	}
	return f()
}
