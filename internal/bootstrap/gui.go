// Package bootstrap starts the browser shell: configuration, logging, the
// native host and the use cases behind it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/domain/build"
	"github.com/bnema/meikai/internal/infrastructure/config"
	"github.com/bnema/meikai/internal/infrastructure/gtkhost"
	"github.com/bnema/meikai/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/meikai/internal/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// GUIOptions configures RunGUI.
type GUIOptions struct {
	// URL opens a window group at startup instead of the launcher.
	URL       string
	BuildInfo build.Info
}

// RunGUI runs the shell until the last window closes or SIGINT/SIGTERM
// arrives, and returns the process exit code.
func RunGUI(opts GUIOptions) int {
	timer := NewStartupTimer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boot := logging.NewFromEnv()
	ctx = logging.WithContext(ctx, boot)

	if err := RunParallelInit(ctx, timer); err != nil {
		boot.Error().Err(err).Msg("failed to load configuration")
		return 1
	}
	timer.Mark("init")

	cfg := config.Get()
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		boot.Error().Err(err).Msg("failed to open log file")
		return 1
	}
	defer closeLog()
	defer logging.LogPanic(&logger)

	ctx = logging.WithContext(ctx, logger)
	gtkhost.InstallGLibLogHandler(logger)

	logger.Info().
		Str("version", opts.BuildInfo.Version).
		Str("commit", opts.BuildInfo.Commit).
		Msg("meikai starting")
	if created := config.GetManager().CreatedFile(); created != "" {
		logger.Info().Str("path", created).Msg("default configuration written")
	}

	if err := run(ctx, cfg, opts.URL, timer); err != nil {
		if errors.Is(err, gtkhost.ErrNativeUnavailable) {
			logger.Error().Msg("this build has no GTK/WebKit backend, rebuild with -tags webkit_cgo")
			return 1
		}
		logger.Error().Err(err).Msg("shell stopped with error")
		return 1
	}
	return 0
}

// RunParallelInit loads the configuration and refreshes the editor schema
// file concurrently. Only a configuration failure is fatal.
func RunParallelInit(ctx context.Context, timer *StartupTimer) error {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		defer func() { timer.MarkDuration("config", time.Since(start)) }()
		return config.Init()
	})

	g.Go(func() error {
		start := time.Now()
		defer func() { timer.MarkDuration("schema", time.Since(start)) }()
		if err := config.EnsureDirectories(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to create directories")
			return nil
		}
		if _, err := config.GenerateSchemaFile(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to write config schema")
		}
		return nil
	})

	return g.Wait()
}

// newLogger builds the process logger from cfg. The returned func closes
// the file sink.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	logCfg := cfg.LoggerConfig()
	if !cfg.Logging.EnableFileLog {
		return logging.New(logCfg), func() {}, nil
	}

	rotator, err := logging.NewRotator(cfg.RotatorConfig())
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logCfg.File = rotator
	return logging.New(logCfg), func() { _ = rotator.Close() }, nil
}

func run(ctx context.Context, cfg *config.Config, startURL string, timer *StartupTimer) error {
	log := logging.FromContext(ctx)

	host, err := gtkhost.New(ctx, gtkhost.Options{})
	if err != nil {
		return err
	}

	var bookmarks port.BookmarkRepository
	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Database.Path).Msg("bookmarks disabled")
	} else {
		defer func() {
			if cerr := db.Close(); cerr != nil {
				log.Warn().Err(cerr).Msg("failed to close database")
			}
		}()
		bookmarks = sqlite.NewBookmarkRepository(db)
	}
	timer.Mark("database")

	shell, err := NewShell(ctx, host, ShellDeps{
		Settings:        func() usecase.ShellSettings { return config.Get().ShellSettings() },
		PollInterval:    cfg.PollInterval(),
		MaxWindowGroups: cfg.Window.MaxWindowGroups,
		SuggestEndpoint: cfg.Search.Suggestions.Endpoint,
		SuggestTimeout:  cfg.SuggestTimeout(),
		Bookmarks:       bookmarks,
	})
	if err != nil {
		return err
	}
	defer shell.Shutdown()
	host.SetMessageHandler(shell.HandleMessage)

	if err := config.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
	config.OnConfigChange(func(_, next *config.Config) {
		log.Info().Msg("configuration reloaded, applies to new windows")
		if next.PollInterval() != cfg.PollInterval() {
			log.Warn().Msg("url_monitor.poll_interval_ms changes apply after restart")
		}
	})
	timer.Mark("wiring")

	return host.Run(ctx, func(ctx context.Context) error {
		timer.Mark("gtk_activate")
		err := shell.Activate(ctx, startURL)
		timer.Log(ctx, zerolog.DebugLevel)
		return err
	})
}
