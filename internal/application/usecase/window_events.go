package usecase

import (
	"context"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/logging"
)

// MonitorStopper stops URL monitoring for a content surface.
type MonitorStopper interface {
	Stop(label string) bool
}

// WindowEventsUseCase relays toolkit window events: resizes re-layout the
// surfaces, destruction ends the group and publishes window-closed.
type WindowEventsUseCase struct {
	surfaces port.SurfaceLookup
	registry *WindowRegistry
	monitor  MonitorStopper
	notifier port.Notifier
	settings SettingsFunc
}

var _ port.WindowEventHandler = (*WindowEventsUseCase)(nil)

// NewWindowEventsUseCase creates a new window event relay.
func NewWindowEventsUseCase(
	surfaces port.SurfaceLookup,
	registry *WindowRegistry,
	monitor MonitorStopper,
	notifier port.Notifier,
	settings SettingsFunc,
) *WindowEventsUseCase {
	return &WindowEventsUseCase{
		surfaces: surfaces,
		registry: registry,
		monitor:  monitor,
		notifier: notifier,
		settings: settings,
	}
}

// OnResized re-applies the surface layout for the new window size.
// Surfaces that cannot be resolved are skipped.
func (uc *WindowEventsUseCase) OnResized(ctx context.Context, windowLabel string, size entity.Size) {
	if windowLabel == LauncherWindowLabel {
		if panel, ok := uc.surfaces.Surface(LauncherSurfaceLabel); ok {
			_ = panel.SetBounds(entity.LayoutSurfaces(size.Width, size.Height, 0).Content)
		}
		return
	}

	group, ok := entity.ParseLabel(windowLabel).Group()
	if !ok {
		return
	}

	layout := entity.LayoutSurfaces(size.Width, size.Height, uc.settings.get().TitleBarHeight)
	log := logging.FromContext(ctx)

	for _, s := range []struct {
		label string
		rect  entity.SurfaceRect
	}{
		{group.TitleBarLabel(), layout.TitleBar},
		{group.ContentLabel(), layout.Content},
	} {
		surface, ok := uc.surfaces.Surface(s.label)
		if !ok {
			continue
		}
		if err := surface.SetBounds(s.rect); err != nil {
			log.Debug().Err(err).Str("label", s.label).Msg("failed to apply surface bounds")
		}
	}

	log.Trace().
		Str("window_label", windowLabel).
		Int("width", size.Width).
		Int("height", size.Height).
		Msg("window resized")
}

// OnDestroyed stops the group's monitor, drops it from the registry and
// publishes window-closed with the content label.
func (uc *WindowEventsUseCase) OnDestroyed(ctx context.Context, windowLabel string) {
	group, ok := entity.ParseLabel(windowLabel).Group()
	if !ok {
		return
	}
	contentLabel := group.ContentLabel()

	if uc.monitor != nil {
		uc.monitor.Stop(contentLabel)
	}

	if uc.registry != nil {
		if _, ok := uc.registry.Remove(windowLabel); !ok {
			// Unregistered groups are partial builds that were aborted.
			return
		}
	}

	uc.notifier.Notify(ctx, entity.WindowClosed{WindowLabel: contentLabel})
	logging.FromContext(ctx).Info().Str("window_label", windowLabel).Msg("window closed")
}
