package config

import "github.com/bnema/meikai/internal/domain/entity"

// Default configuration constants
const (
	// Logging defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 7 // days

	// Window defaults
	defaultWindowTitle     = "Meikai Browser"
	defaultTitleBarHeight  = 20 // pixels
	defaultWidthPercent    = 0.73
	defaultHeightPercent   = 0.74
	defaultMaxWindowGroups = 32
	defaultMaxPopupDepth   = 8

	// Panel defaults (3:2 launcher)
	defaultPanelWidthPercent = 0.47
	defaultPanelAspectWidth  = 3
	defaultPanelAspectHeight = 2
	defaultQuickLinksLimit   = 6
	minQuickLinksLimit       = 3
	maxQuickLinksLimit       = 6

	// URL monitor defaults
	defaultPollIntervalMs = 300

	// Search defaults
	defaultSearchEngine      = "https://www.google.com/search?q=%s"
	defaultSuggestEndpoint   = "https://suggestqueries.google.com/complete/search?client=firefox"
	defaultSuggestTimeoutMs  = 3000
	defaultSuggestMaxResults = 5
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for meikai.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultLogMaxAgeDays,
			Compress:      true,
		},
		Window: WindowConfig{
			Title:          defaultWindowTitle,
			TitleBarHeight: defaultTitleBarHeight,
			Sizing: SizingConfig{
				Mode:           SizingModePercent,
				WidthPercent:   defaultWidthPercent,
				HeightPercent:  defaultHeightPercent,
				FallbackWidth:  entity.DefaultFallbackWidth,
				FallbackHeight: entity.DefaultFallbackHeight,
			},
			MaxWindowGroups: defaultMaxWindowGroups,
			MaxPopupDepth:   defaultMaxPopupDepth,
		},
		Panel: PanelConfig{
			Sizing: SizingConfig{
				Mode:           SizingModeAspect,
				WidthPercent:   defaultPanelWidthPercent,
				AspectWidth:    defaultPanelAspectWidth,
				AspectHeight:   defaultPanelAspectHeight,
				FallbackWidth:  entity.DefaultFallbackWidth,
				FallbackHeight: entity.DefaultFallbackHeight,
			},
			QuickLinksLimit: defaultQuickLinksLimit,
		},
		URLMonitor: URLMonitorConfig{
			PollIntervalMs: defaultPollIntervalMs,
			AutoStart:      true,
		},
		Search: SearchConfig{
			DefaultEngine: defaultSearchEngine,
			Shortcuts:     GetDefaultSearchShortcuts(),
			Suggestions: SuggestionsConfig{
				Enabled:    true,
				Endpoint:   defaultSuggestEndpoint,
				TimeoutMs:  defaultSuggestTimeoutMs,
				MaxResults: defaultSuggestMaxResults,
			},
		},
		Debug: DebugConfig{
			EnableDevTools: false,
		},
	}
}

// GetDefaultSearchShortcuts returns the built-in bang shortcuts.
func GetDefaultSearchShortcuts() map[string]SearchShortcut {
	return map[string]SearchShortcut{
		"ddg": {
			URL:         "https://duckduckgo.com/?q=%s",
			Description: "DuckDuckGo search",
		},
		"g": {
			URL:         "https://www.google.com/search?q=%s",
			Description: "Google search",
		},
		"gh": {
			URL:         "https://github.com/search?q=%s",
			Description: "GitHub search",
		},
		"go": {
			URL:         "https://pkg.go.dev/search?q=%s",
			Description: "Go package search",
		},
		"mdn": {
			URL:         "https://developer.mozilla.org/en-US/search?q=%s",
			Description: "MDN Web Docs search",
		},
		"w": {
			URL:         "https://en.wikipedia.org/wiki/Special:Search?search=%s",
			Description: "Wikipedia search",
		},
		"yt": {
			URL:         "https://www.youtube.com/results?search_query=%s",
			Description: "YouTube search",
		},
	}
}
