package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/domain/url"
	"github.com/bnema/meikai/internal/logging"
)

// Target addresses a window group member from the command boundary.
// When Kind is TargetUnknown the kind is inferred from the label prefix.
type Target struct {
	Label string
	Kind  entity.TargetKind
}

// WindowLabel returns the label of the owning window.
func (t Target) WindowLabel() string {
	if t.Kind == entity.TargetWindow {
		return t.Label
	}
	return entity.ParentOf(t.Label)
}

// ContentLabel returns the label of the content surface of the group.
func (t Target) ContentLabel() string {
	if t.Kind == entity.TargetContent {
		return t.Label
	}
	return entity.ResolveTarget(t.Label, entity.TargetContent)
}

// WindowControlsUseCase applies window and navigation commands.
// A label resolving to nothing is a no-op: the usual cause is a command
// racing a user-driven close.
type WindowControlsUseCase struct {
	windows  port.WindowLookup
	surfaces port.SurfaceLookup
}

// NewWindowControlsUseCase creates a new control dispatcher.
func NewWindowControlsUseCase(windows port.WindowLookup, surfaces port.SurfaceLookup) *WindowControlsUseCase {
	return &WindowControlsUseCase{
		windows:  windows,
		surfaces: surfaces,
	}
}

// Show makes the window visible.
func (uc *WindowControlsUseCase) Show(ctx context.Context, t Target) error {
	return uc.withWindow(ctx, t, "show", port.NativeWindow.Show)
}

// Hide hides the window.
func (uc *WindowControlsUseCase) Hide(ctx context.Context, t Target) error {
	return uc.withWindow(ctx, t, "hide", port.NativeWindow.Hide)
}

// Close closes the window. Closing an already closed window succeeds.
func (uc *WindowControlsUseCase) Close(ctx context.Context, t Target) error {
	return uc.withWindow(ctx, t, "close", port.NativeWindow.Close)
}

// Minimize toggles the minimized state.
func (uc *WindowControlsUseCase) Minimize(ctx context.Context, t Target) error {
	return uc.withWindow(ctx, t, "minimize", func(w port.NativeWindow) error {
		minimized, err := w.IsMinimized()
		if err != nil {
			return err
		}
		if minimized {
			return w.Unminimize()
		}
		return w.Minimize()
	})
}

// ToggleMaximize toggles the maximized state.
func (uc *WindowControlsUseCase) ToggleMaximize(ctx context.Context, t Target) error {
	return uc.withWindow(ctx, t, "toggle maximize", func(w port.NativeWindow) error {
		maximized, err := w.IsMaximized()
		if err != nil {
			return err
		}
		if maximized {
			return w.Unmaximize()
		}
		return w.Maximize()
	})
}

// Drag starts an interactive window move.
func (uc *WindowControlsUseCase) Drag(ctx context.Context, t Target) error {
	return uc.withWindow(ctx, t, "drag", port.NativeWindow.StartDragging)
}

// Navigate loads rawURL into the content surface.
func (uc *WindowControlsUseCase) Navigate(ctx context.Context, t Target, rawURL string) error {
	u, err := url.ParseWindowURL(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	address := u.String()
	return uc.withSurface(ctx, t, "navigate", func(s port.NativeSurface) error {
		return s.LoadURL(address)
	})
}

// GoBack navigates the content surface back in history.
func (uc *WindowControlsUseCase) GoBack(ctx context.Context, t Target) error {
	return uc.withSurface(ctx, t, "go back", port.NativeSurface.GoBack)
}

// GoForward navigates the content surface forward in history.
func (uc *WindowControlsUseCase) GoForward(ctx context.Context, t Target) error {
	return uc.withSurface(ctx, t, "go forward", port.NativeSurface.GoForward)
}

// Reload reloads the content surface.
func (uc *WindowControlsUseCase) Reload(ctx context.Context, t Target) error {
	return uc.withSurface(ctx, t, "reload", port.NativeSurface.Reload)
}

// CurrentURL returns the address of the content surface.
// Unlike the commands it fails with ErrSurfaceNotFound.
func (uc *WindowControlsUseCase) CurrentURL(ctx context.Context, t Target) (string, error) {
	label := t.ContentLabel()
	surface, ok := uc.surfaces.Surface(label)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSurfaceNotFound, label)
	}
	current, err := surface.URL()
	if err != nil {
		return "", fmt.Errorf("failed to read url of %s: %w", label, err)
	}
	return current, nil
}

func (uc *WindowControlsUseCase) withWindow(
	ctx context.Context,
	t Target,
	op string,
	fn func(port.NativeWindow) error,
) error {
	log := logging.FromContext(ctx)
	label := t.WindowLabel()

	window, ok := uc.windows.Window(label)
	if !ok {
		log.Debug().Str("label", label).Str("op", op).Msg("window not found, ignoring")
		return nil
	}
	if err := fn(window); err != nil {
		return fmt.Errorf("failed to %s %s: %w", op, label, err)
	}
	log.Debug().Str("label", label).Str("op", op).Msg("window command applied")
	return nil
}

func (uc *WindowControlsUseCase) withSurface(
	ctx context.Context,
	t Target,
	op string,
	fn func(port.NativeSurface) error,
) error {
	log := logging.FromContext(ctx)
	label := t.ContentLabel()

	surface, ok := uc.surfaces.Surface(label)
	if !ok {
		log.Debug().Str("label", label).Str("op", op).Msg("surface not found, ignoring")
		return nil
	}
	if err := fn(surface); err != nil {
		return fmt.Errorf("failed to %s %s: %w", op, label, err)
	}
	log.Debug().Str("label", label).Str("op", op).Msg("surface command applied")
	return nil
}
