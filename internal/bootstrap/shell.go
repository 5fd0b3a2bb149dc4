package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/infrastructure/bridge"
	"github.com/bnema/meikai/internal/infrastructure/suggest"
	"github.com/bnema/meikai/internal/logging"
)

// ShellHost is the toolkit backend the shell drives.
type ShellHost interface {
	port.WindowHost
	bridge.ScriptSink
}

// ShellDeps holds what the shell needs besides the host.
type ShellDeps struct {
	Settings        usecase.SettingsFunc
	PollInterval    time.Duration
	MaxWindowGroups int

	// Suggestions may be nil to use the HTTP client for SuggestEndpoint.
	Suggestions     port.SuggestionProvider
	SuggestEndpoint string
	SuggestTimeout  time.Duration

	// Bookmarks may be nil, which leaves the bookmark commands out.
	Bookmarks port.BookmarkRepository
}

// Shell wires the use cases to a host and its script bridge.
type Shell struct {
	monitor  *usecase.URLMonitorUseCase
	creator  *usecase.CreateWindowUseCase
	launcher *usecase.OpenLauncherUseCase
	router   *bridge.Router
}

// NewShell builds the use cases around host and registers the command
// table on a new router.
func NewShell(ctx context.Context, host ShellHost, deps ShellDeps) (*Shell, error) {
	notifier := bridge.NewBroadcaster(host)
	registry := usecase.NewWindowRegistry(deps.MaxWindowGroups)
	monitor := usecase.NewURLMonitorUseCase(host, notifier, registry, deps.PollInterval)
	events := usecase.NewWindowEventsUseCase(host, registry, monitor, notifier, deps.Settings)
	policy := usecase.NewNewWindowPolicy(notifier, deps.Settings)
	creator := usecase.NewCreateWindowUseCase(host, registry, monitor, events, policy, deps.Settings)
	launcher := usecase.NewOpenLauncherUseCase(host, events, deps.Settings)

	provider := deps.Suggestions
	if provider == nil {
		provider = suggest.NewClient(deps.SuggestEndpoint, deps.SuggestTimeout)
	}

	router := bridge.NewRouter(ctx, host)
	cmds := bridge.Commands{
		CreateWindow: creator,
		Controls:     usecase.NewWindowControlsUseCase(host, host),
		Monitor:      monitor,
		Suggestions:  usecase.NewGetSearchSuggestionsUseCase(provider, deps.Settings),
		ResolveInput: usecase.NewResolveInputUseCase(deps.Settings),
		Registry:     registry,
		Launcher:     launcher,
	}
	if deps.Bookmarks != nil {
		cmds.Bookmarks = usecase.NewBookmarksUseCase(deps.Bookmarks, notifier, deps.Settings)
	}
	if err := cmds.Register(router); err != nil {
		return nil, fmt.Errorf("failed to register bridge commands: %w", err)
	}

	logging.FromContext(ctx).Debug().Strs("commands", router.Types()).Msg("bridge ready")

	return &Shell{
		monitor:  monitor,
		creator:  creator,
		launcher: launcher,
		router:   router,
	}, nil
}

// HandleMessage receives script messages from the host.
func (s *Shell) HandleMessage(sender string, raw []byte) {
	s.router.HandleMessage(sender, raw)
}

// Activate opens the first window: a window group for startURL, or the
// launcher when startURL is empty.
func (s *Shell) Activate(ctx context.Context, startURL string) error {
	if startURL == "" {
		if err := s.launcher.Execute(ctx); err != nil {
			return fmt.Errorf("failed to open launcher: %w", err)
		}
		return nil
	}

	out, err := s.creator.Execute(ctx, usecase.CreateWindowInput{URL: startURL})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", startURL, err)
	}
	logging.FromContext(ctx).Info().
		Str("window", out.WindowLabel).
		Str("url", out.URL).
		Msg("start window opened")
	return nil
}

// Shutdown stops URL monitoring and waits for in-flight commands.
func (s *Shell) Shutdown() {
	s.monitor.StopAll()
	s.router.Wait()
}
