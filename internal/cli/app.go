// Package cli holds the dependencies shared by the CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/meikai/internal/cli/styles"
	"github.com/bnema/meikai/internal/domain/build"
	"github.com/bnema/meikai/internal/infrastructure/config"
	"github.com/bnema/meikai/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Theme     *styles.Theme
	BuildInfo build.Info

	ctx context.Context

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

// NewApp creates the CLI application. Logs go to stderr at warn level
// unless MEIKAI_LOG_LEVEL says otherwise.
func NewApp(info build.Info) *App {
	level := os.Getenv("MEIKAI_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger := logging.NewFromConfigValues(level, "console")

	return &App{
		Theme:     styles.NewTheme(),
		BuildInfo: info,
		ctx:       logging.WithContext(context.Background(), logger),
	}
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Config loads the effective configuration on first use. Loading writes
// the default file when none exists.
func (a *App) Config() (*config.Config, error) {
	a.configOnce.Do(func() {
		mgr, err := config.NewManager()
		if err != nil {
			a.configErr = err
			return
		}
		if err := mgr.Load(); err != nil {
			a.configErr = fmt.Errorf("failed to load config: %w", err)
			return
		}
		a.config = mgr.Get()
	})
	return a.config, a.configErr
}
