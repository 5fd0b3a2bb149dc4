// Package config provides configuration management for meikai with Viper integration.
package config

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for meikai.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Window controls browser window groups (title bar + content).
	Window WindowConfig `mapstructure:"window" toml:"window" json:"window"`
	// Panel controls the launcher window.
	Panel PanelConfig `mapstructure:"panel" toml:"panel" json:"panel"`
	// URLMonitor controls the content address poller that feeds title bars.
	URLMonitor URLMonitorConfig `mapstructure:"url_monitor" toml:"url_monitor" json:"url_monitor"`
	Search     SearchConfig     `mapstructure:"search" toml:"search" json:"search"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Debug      DebugConfig      `mapstructure:"debug" toml:"debug" json:"debug"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// SizingMode selects how the initial size of a window is computed.
type SizingMode string

const (
	SizingModeFixed   SizingMode = "fixed"
	SizingModePercent SizingMode = "percent"
	SizingModeAspect  SizingMode = "aspect"
)

// SizingConfig describes the initial size of a window relative to the
// primary monitor. Width/Height are only read in fixed mode.
type SizingConfig struct {
	Mode           SizingMode `mapstructure:"mode" toml:"mode" json:"mode" jsonschema:"enum=fixed,enum=percent,enum=aspect"`
	Width          int        `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=0"`
	Height         int        `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=0"`
	WidthPercent   float64    `mapstructure:"width_percent" toml:"width_percent" json:"width_percent" jsonschema:"minimum=0,maximum=1"`
	HeightPercent  float64    `mapstructure:"height_percent" toml:"height_percent" json:"height_percent" jsonschema:"minimum=0,maximum=1"`
	AspectWidth    float64    `mapstructure:"aspect_width" toml:"aspect_width" json:"aspect_width" jsonschema:"minimum=0"`
	AspectHeight   float64    `mapstructure:"aspect_height" toml:"aspect_height" json:"aspect_height" jsonschema:"minimum=0"`
	FallbackWidth  int        `mapstructure:"fallback_width" toml:"fallback_width" json:"fallback_width" jsonschema:"minimum=1"`
	FallbackHeight int        `mapstructure:"fallback_height" toml:"fallback_height" json:"fallback_height" jsonschema:"minimum=1"`
}

// WindowConfig controls browser window groups.
type WindowConfig struct {
	Title          string       `mapstructure:"title" toml:"title" json:"title"`
	TitleBarHeight int          `mapstructure:"title_bar_height" toml:"title_bar_height" json:"title_bar_height" jsonschema:"minimum=0"`
	Sizing         SizingConfig `mapstructure:"sizing" toml:"sizing" json:"sizing"`
	// MaxWindowGroups caps concurrently open windows (0 = unlimited).
	// Read at startup only.
	MaxWindowGroups int `mapstructure:"max_window_groups" toml:"max_window_groups" json:"max_window_groups" jsonschema:"minimum=0"`
	// MaxPopupDepth caps nested pop-up windows (0 = unlimited).
	MaxPopupDepth int `mapstructure:"max_popup_depth" toml:"max_popup_depth" json:"max_popup_depth" jsonschema:"minimum=0"`
}

// PanelConfig controls the launcher window.
type PanelConfig struct {
	Sizing SizingConfig `mapstructure:"sizing" toml:"sizing" json:"sizing"`
	// QuickLinksLimit caps the starred bookmarks shown as quick links.
	QuickLinksLimit int `mapstructure:"quick_links_limit" toml:"quick_links_limit" json:"quick_links_limit" jsonschema:"minimum=3,maximum=6"`
}

// URLMonitorConfig controls the content address poller.
type URLMonitorConfig struct {
	// PollIntervalMs is read at startup; running monitors keep their interval.
	PollIntervalMs int  `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=50,maximum=60000"`
	AutoStart      bool `mapstructure:"auto_start" toml:"auto_start" json:"auto_start"`
}

// SearchConfig holds omnibox search configuration.
type SearchConfig struct {
	// DefaultEngine is the URL template for plain search text (must contain %s).
	DefaultEngine string                    `mapstructure:"default_engine" toml:"default_engine" json:"default_engine"`
	Shortcuts     map[string]SearchShortcut `mapstructure:"shortcuts" toml:"shortcuts" json:"shortcuts"`
	Suggestions   SuggestionsConfig         `mapstructure:"suggestions" toml:"suggestions" json:"suggestions"`
}

// SearchShortcut represents a bang shortcut ("!gh query").
type SearchShortcut struct {
	URL         string `mapstructure:"url" toml:"url" json:"url"`
	Description string `mapstructure:"description" toml:"description" json:"description"`
}

// SuggestionsConfig controls the query-completion endpoint.
type SuggestionsConfig struct {
	Enabled    bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Endpoint   string `mapstructure:"endpoint" toml:"endpoint" json:"endpoint"`
	TimeoutMs  int    `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=1"`
	MaxResults int    `mapstructure:"max_results" toml:"max_results" json:"max_results" jsonschema:"minimum=0"`
}

// DatabaseConfig locates the bookmark store. An empty path resolves to
// $XDG_DATA_HOME/meikai/meikai.db.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// DebugConfig holds debugging switches.
type DebugConfig struct {
	EnableDevTools bool `mapstructure:"enable_devtools" toml:"enable_devtools" json:"enable_devtools"`
}

// ShortcutURLs returns a simple map of shortcut keys to URL templates.
// This is useful for passing to url.BuildSearchURL.
func (c *Config) ShortcutURLs() map[string]string {
	result := make(map[string]string, len(c.Search.Shortcuts))
	for key, shortcut := range c.Search.Shortcuts {
		result[key] = shortcut.URL
	}
	return result
}
