package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/domain/url"
	"github.com/bnema/meikai/internal/logging"
	"github.com/google/uuid"
)

// CreateWindowInput contains parameters for creating a window group.
type CreateWindowInput struct {
	URL string

	// ParentLabel is the content surface whose pop-up request created
	// this window, empty for user-initiated windows.
	ParentLabel string
	// Depth is 0 for user-initiated windows and parent depth + 1 for
	// intercepted pop-ups.
	Depth int
}

// CreateWindowOutput describes the created window group.
type CreateWindowOutput struct {
	Group        entity.WindowGroup
	WindowLabel  string
	ContentLabel string
	URL          string
	Size         entity.Size
}

// WindowCreator creates window groups. The new-window policy recurses
// through it.
type WindowCreator interface {
	Execute(ctx context.Context, input CreateWindowInput) (*CreateWindowOutput, error)
}

// MonitorStarter starts URL monitoring for a content surface.
type MonitorStarter interface {
	Watch(ctx context.Context, contentLabel string) error
}

// CreateWindowUseCase builds one top-level window with its title-bar and
// content surfaces.
type CreateWindowUseCase struct {
	host     port.WindowHost
	registry *WindowRegistry
	monitor  MonitorStarter
	events   port.WindowEventHandler
	policy   *NewWindowPolicy
	settings SettingsFunc
	newID    func() entity.LogicalWindowID
}

// NewCreateWindowUseCase creates a new window factory.
// monitor and policy may be nil: without a monitor no surface is watched,
// without a policy every native pop-up is allowed.
func NewCreateWindowUseCase(
	host port.WindowHost,
	registry *WindowRegistry,
	monitor MonitorStarter,
	events port.WindowEventHandler,
	policy *NewWindowPolicy,
	settings SettingsFunc,
) *CreateWindowUseCase {
	if registry == nil {
		registry = NewWindowRegistry(0)
	}
	return &CreateWindowUseCase{
		host:     host,
		registry: registry,
		monitor:  monitor,
		events:   events,
		policy:   policy,
		settings: settings,
		newID: func() entity.LogicalWindowID {
			return entity.LogicalWindowID(uuid.NewString())
		},
	}
}

// SetIDGenerator replaces the logical window ID generator.
func (uc *CreateWindowUseCase) SetIDGenerator(gen func() entity.LogicalWindowID) {
	if gen != nil {
		uc.newID = gen
	}
}

// Execute creates the window group and returns its labels.
// The URL is validated before any toolkit call; toolkit failures are
// wrapped in ErrPlatformWindow and leave nothing behind.
func (uc *CreateWindowUseCase) Execute(ctx context.Context, input CreateWindowInput) (*CreateWindowOutput, error) {
	log := logging.FromContext(ctx)

	target, err := url.ParseWindowURL(input.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	address := target.String()

	settings := uc.settings.get()
	group := entity.NewWindowGroup(uc.newID())

	if err := uc.registry.Add(WindowRecord{
		Group:       group,
		URL:         address,
		ParentLabel: input.ParentLabel,
		Depth:       input.Depth,
	}); err != nil {
		return nil, fmt.Errorf("failed to register window: %w", err)
	}

	out, err := uc.build(ctx, group, address, input.Depth, settings)
	if err != nil {
		uc.registry.Remove(group.WindowLabel())
		return nil, err
	}

	if uc.monitor != nil && settings.AutoStartMonitor {
		if err := uc.monitor.Watch(ctx, out.ContentLabel); err != nil {
			log.Warn().Err(err).Str("label", out.ContentLabel).Msg("failed to start url monitor")
		}
	}

	log.Info().
		Str("window_label", out.WindowLabel).
		Str("url", address).
		Int("depth", input.Depth).
		Int("width", out.Size.Width).
		Int("height", out.Size.Height).
		Msg("window created")

	return out, nil
}

func (uc *CreateWindowUseCase) build(
	ctx context.Context,
	group entity.WindowGroup,
	address string,
	depth int,
	settings ShellSettings,
) (*CreateWindowOutput, error) {
	var monitor *entity.Size
	if m, ok := uc.host.PrimaryMonitor(); ok {
		monitor = &m
	}
	size := entity.ResolveWindowSize(monitor, settings.Sizing)
	layout := entity.LayoutSurfaces(size.Width, size.Height, settings.TitleBarHeight)

	window, err := uc.host.BuildWindow(ctx, port.WindowSpec{
		Label:     group.WindowLabel(),
		Title:     settings.WindowTitle,
		Size:      size,
		Decorated: false,
		Resizable: true,
		Centered:  true,
		Events:    uc.events,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: build window: %w", ErrPlatformWindow, err)
	}

	if _, err := uc.host.AttachSurface(ctx, port.SurfaceSpec{
		Label:        group.TitleBarLabel(),
		WindowLabel:  group.WindowLabel(),
		Kind:         port.SurfaceTitleBar,
		Bounds:       layout.TitleBar,
		URL:          address,
		ContentLabel: group.ContentLabel(),
	}); err != nil {
		return nil, uc.abort(ctx, group, window, fmt.Errorf("%w: attach title bar: %w", ErrPlatformWindow, err))
	}

	if _, err := uc.host.AttachSurface(ctx, port.SurfaceSpec{
		Label:       group.ContentLabel(),
		WindowLabel: group.WindowLabel(),
		Kind:        port.SurfaceContent,
		Bounds:      layout.Content,
		URL:         address,
		OnNewWindow: uc.popupHandler(group.ContentLabel(), depth),
		DevTools:    settings.DevTools,
	}); err != nil {
		return nil, uc.abort(ctx, group, window, fmt.Errorf("%w: attach content: %w", ErrPlatformWindow, err))
	}

	if err := window.Show(); err != nil {
		return nil, uc.abort(ctx, group, window, fmt.Errorf("%w: show window: %w", ErrPlatformWindow, err))
	}

	return &CreateWindowOutput{
		Group:        group,
		WindowLabel:  group.WindowLabel(),
		ContentLabel: group.ContentLabel(),
		URL:          address,
		Size:         size,
	}, nil
}

// abort unregisters and closes a partially built window, then returns
// cause. The group is unregistered first so its destroy event is not
// reported as a window closure.
func (uc *CreateWindowUseCase) abort(
	ctx context.Context,
	group entity.WindowGroup,
	window port.NativeWindow,
	cause error,
) error {
	uc.registry.Remove(group.WindowLabel())
	if closeErr := window.Close(); closeErr != nil {
		logging.FromContext(ctx).Warn().Err(closeErr).Msg("failed to close partially built window")
		return errors.Join(cause, closeErr)
	}
	return cause
}

// popupHandler binds the policy to one content surface.
func (uc *CreateWindowUseCase) popupHandler(contentLabel string, depth int) port.NewWindowHandler {
	if uc.policy == nil {
		return nil
	}
	return func(ctx context.Context, target string) port.NewWindowResponse {
		return uc.policy.Decide(ctx, uc, PopupRequest{
			TargetURL:   target,
			ParentLabel: contentLabel,
			Depth:       depth + 1,
		})
	}
}
