package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/bnema/meikai/internal/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// reloadDelay coalesces the write/rename/chmod burst editors produce on save.
const reloadDelay = 150 * time.Millisecond

// ChangeFunc receives the configuration that was active before a reload
// and the one that replaced it.
type ChangeFunc func(prev, next *Config)

var errNotInitialized = errors.New("configuration not initialized")

// Watch reloads the configuration whenever the file changes on disk. A
// file that no longer parses or validates is reported and the active
// configuration is kept.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.scheduleReload)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers fn for every successful reload. Callbacks run
// on the watcher goroutine in registration order.
func (m *Manager) OnConfigChange(fn ChangeFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

func (m *Manager) scheduleReload(e fsnotify.Event) {
	log := watchLogger()
	log.Trace().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")

	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()
	if m.reloadTimer != nil {
		m.reloadTimer.Stop()
	}
	m.reloadTimer = time.AfterFunc(reloadDelay, m.applyReload)
}

func (m *Manager) applyReload() {
	log := watchLogger()

	m.mu.Lock()
	prev := m.config
	next, err := m.reread()
	if err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config change ignored, keeping the active configuration")
		return
	}
	m.config = next
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	log.Debug().Int("callbacks", len(callbacks)).Msg("configuration reloaded")
	for _, fn := range callbacks {
		fn(prev, next)
	}
}

// reread reads the file again. Callers hold m.mu for writing.
func (m *Manager) reread() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", m.viper.ConfigFileUsed(), err)
	}
	return m.build()
}

func watchLogger() zerolog.Logger {
	return logging.NewFromEnv().With().Str("component", "config-watch").Logger()
}

// Watch starts watching the global configuration file.
func Watch() error {
	if globalManager == nil {
		return errNotInitialized
	}
	return globalManager.Watch()
}

// OnConfigChange registers fn on the global manager. It is a no-op before
// Init.
func OnConfigChange(fn ChangeFunc) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(fn)
}
