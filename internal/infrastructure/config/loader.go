package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []ChangeFunc
	watching  bool
	// createdFile is set when Load wrote a first-run config file.
	createdFile string

	reloadMu    sync.Mutex
	reloadTimer *time.Timer
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// MEIKAI_WINDOW_TITLE_BAR_HEIGHT overrides window.title_bar_height, etc.
	v.SetEnvPrefix("MEIKAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "MEIKAI_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind MEIKAI_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "MEIKAI_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind MEIKAI_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]ChangeFunc, 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.build()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// build turns what viper holds into a normalized, validated Config.
func (m *Manager) build() (*Config, error) {
	config, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	config.Database.Path = strings.TrimSpace(config.Database.Path)
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "", "console", "text":
		config.Logging.Format = "console"
	case "json":
		config.Logging.Format = "json"
	}
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))

	normalizeSizing(&config.Window.Sizing, SizingModePercent)
	normalizeSizing(&config.Panel.Sizing, SizingModeAspect)

	config.Window.Title = strings.TrimSpace(config.Window.Title)
	if config.Window.Title == "" {
		config.Window.Title = defaultWindowTitle
	}

	config.Search.DefaultEngine = strings.TrimSpace(config.Search.DefaultEngine)
	config.Search.Suggestions.Endpoint = strings.TrimSpace(config.Search.Suggestions.Endpoint)
}

func normalizeSizing(s *SizingConfig, fallback SizingMode) {
	mode := SizingMode(strings.ToLower(strings.TrimSpace(string(s.Mode))))
	if mode == "" {
		mode = fallback
	}
	s.Mode = mode
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Search.Shortcuts = make(map[string]SearchShortcut, len(m.config.Search.Shortcuts))
	for k, v := range m.config.Search.Shortcuts {
		configCopy.Search.Shortcuts[k] = v
	}
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// CreatedFile returns the config file written by the last Load, if any.
func (m *Manager) CreatedFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.createdFile
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := GenerateSchemaFile(); err != nil {
		return err
	}

	m.createdFile = configFile
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setWindowDefaults(defaults)
	m.setSizingDefaults("window.sizing", defaults.Window.Sizing)
	m.setSizingDefaults("panel.sizing", defaults.Panel.Sizing)
	m.viper.SetDefault("panel.quick_links_limit", defaults.Panel.QuickLinksLimit)
	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.setURLMonitorDefaults(defaults)
	m.setSearchDefaults(defaults)
	m.viper.SetDefault("debug.enable_devtools", defaults.Debug.EnableDevTools)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.title", defaults.Window.Title)
	m.viper.SetDefault("window.title_bar_height", defaults.Window.TitleBarHeight)
	m.viper.SetDefault("window.max_window_groups", defaults.Window.MaxWindowGroups)
	m.viper.SetDefault("window.max_popup_depth", defaults.Window.MaxPopupDepth)
}

func (m *Manager) setSizingDefaults(prefix string, s SizingConfig) {
	m.viper.SetDefault(prefix+".mode", string(s.Mode))
	m.viper.SetDefault(prefix+".width", s.Width)
	m.viper.SetDefault(prefix+".height", s.Height)
	m.viper.SetDefault(prefix+".width_percent", s.WidthPercent)
	m.viper.SetDefault(prefix+".height_percent", s.HeightPercent)
	m.viper.SetDefault(prefix+".aspect_width", s.AspectWidth)
	m.viper.SetDefault(prefix+".aspect_height", s.AspectHeight)
	m.viper.SetDefault(prefix+".fallback_width", s.FallbackWidth)
	m.viper.SetDefault(prefix+".fallback_height", s.FallbackHeight)
}

func (m *Manager) setURLMonitorDefaults(defaults *Config) {
	m.viper.SetDefault("url_monitor.poll_interval_ms", defaults.URLMonitor.PollIntervalMs)
	m.viper.SetDefault("url_monitor.auto_start", defaults.URLMonitor.AutoStart)
}

func (m *Manager) setSearchDefaults(defaults *Config) {
	m.viper.SetDefault("search.default_engine", defaults.Search.DefaultEngine)
	m.viper.SetDefault("search.shortcuts", defaults.Search.Shortcuts)
	m.viper.SetDefault("search.suggestions.enabled", defaults.Search.Suggestions.Enabled)
	m.viper.SetDefault("search.suggestions.endpoint", defaults.Search.Suggestions.Endpoint)
	m.viper.SetDefault("search.suggestions.timeout_ms", defaults.Search.Suggestions.TimeoutMs)
	m.viper.SetDefault("search.suggestions.max_results", defaults.Search.Suggestions.MaxResults)
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
// This is useful for accessing watcher functionality.
func GetManager() *Manager {
	return globalManager
}
