package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/logging"
)

// Launcher labels. They sit outside the window group naming scheme.
const (
	LauncherWindowLabel  = "main"
	LauncherSurfaceLabel = "main-panel"
)

// OpenLauncherUseCase opens the launcher panel window.
type OpenLauncherUseCase struct {
	host     port.WindowHost
	events   port.WindowEventHandler
	settings SettingsFunc
}

// NewOpenLauncherUseCase creates a new launcher opener.
func NewOpenLauncherUseCase(host port.WindowHost, events port.WindowEventHandler, settings SettingsFunc) *OpenLauncherUseCase {
	return &OpenLauncherUseCase{
		host:     host,
		events:   events,
		settings: settings,
	}
}

// Execute builds and shows the launcher, or presents it again when it
// already exists.
func (uc *OpenLauncherUseCase) Execute(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if window, ok := uc.host.Window(LauncherWindowLabel); ok {
		log.Debug().Msg("launcher already open")
		return window.Show()
	}

	settings := uc.settings.get()
	var monitor *entity.Size
	if m, ok := uc.host.PrimaryMonitor(); ok {
		monitor = &m
	}
	size := entity.ResolveWindowSize(monitor, settings.PanelSizing)

	window, err := uc.host.BuildWindow(ctx, port.WindowSpec{
		Label:     LauncherWindowLabel,
		Title:     settings.WindowTitle,
		Size:      size,
		Decorated: true,
		Resizable: true,
		Centered:  true,
		Events:    uc.events,
	})
	if err != nil {
		return fmt.Errorf("%w: build launcher: %w", ErrPlatformWindow, err)
	}

	full := entity.LayoutSurfaces(size.Width, size.Height, 0).Content
	if _, err := uc.host.AttachSurface(ctx, port.SurfaceSpec{
		Label:       LauncherSurfaceLabel,
		WindowLabel: LauncherWindowLabel,
		Kind:        port.SurfacePanel,
		Bounds:      full,
		DevTools:    settings.DevTools,
	}); err != nil {
		_ = window.Close()
		return fmt.Errorf("%w: attach launcher panel: %w", ErrPlatformWindow, err)
	}

	if err := window.Show(); err != nil {
		return fmt.Errorf("%w: show launcher: %w", ErrPlatformWindow, err)
	}

	log.Info().Int("width", size.Width).Int("height", size.Height).Msg("launcher opened")
	return nil
}
