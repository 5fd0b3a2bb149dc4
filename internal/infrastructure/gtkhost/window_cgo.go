//go:build webkit_cgo

package gtkhost

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/logging"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// nativeWindow is a GTK application window. Surfaces are children of a
// GtkFixed laid over a drawing area; the drawing area follows the window
// size and reports resizes, while the fixed container does not take part
// in size negotiation so the window can shrink below its surfaces.
type nativeWindow struct {
	host  *Host
	label string
	title string

	win   *gtk.ApplicationWindow
	fixed *gtk.Fixed

	destroyed atomic.Bool

	mu   sync.Mutex
	size entity.Size
}

var _ port.NativeWindow = (*nativeWindow)(nil)

func (h *Host) newWindow(ctx context.Context, spec port.WindowSpec) *nativeWindow {
	log := logging.FromContext(ctx)

	win := gtk.NewApplicationWindow(h.app)
	win.SetTitle(spec.Title)
	win.SetDefaultSize(spec.Size.Width, spec.Size.Height)
	win.SetDecorated(spec.Decorated)
	win.SetResizable(spec.Resizable)

	area := gtk.NewDrawingArea()
	area.SetHExpand(true)
	area.SetVExpand(true)

	fixed := gtk.NewFixed()
	overlay := gtk.NewOverlay()
	overlay.SetChild(area)
	overlay.AddOverlay(fixed)
	win.SetChild(overlay)

	w := &nativeWindow{
		host:  h,
		label: spec.Label,
		title: spec.Title,
		win:   win,
		fixed: fixed,
		size:  spec.Size,
	}

	// Events outlive the command that built the window.
	evCtx := logging.WithWindowLabel(context.WithoutCancel(h.ctx), spec.Label)

	area.ConnectResize(func(width, height int) {
		size := entity.Size{Width: width, Height: height}
		w.mu.Lock()
		w.size = size
		w.mu.Unlock()
		if spec.Events != nil {
			spec.Events.OnResized(evCtx, spec.Label, size)
		}
	})

	win.ConnectDestroy(func() {
		w.destroyed.Store(true)
		removed := h.reg.removeWindow(spec.Label)
		logging.FromContext(evCtx).Debug().Strs("surfaces", removed).Msg("window destroyed")
		if spec.Events != nil {
			spec.Events.OnDestroyed(evCtx, spec.Label)
		}
	})

	if spec.Centered {
		// Placement belongs to the compositor under GTK4.
		log.Trace().Str("label", spec.Label).Msg("centering left to the compositor")
	}

	return w
}

func (w *nativeWindow) native() uintptr {
	return coreglib.InternObject(w.win).Native()
}

// do runs fn on the GTK thread unless the window is gone.
func (w *nativeWindow) do(fn func()) error {
	if w.destroyed.Load() {
		return ErrDestroyed
	}
	return w.host.invoke(func() {
		if !w.destroyed.Load() {
			fn()
		}
	})
}

// post queues fn on the GTK thread unless the window is gone.
func (w *nativeWindow) post(fn func()) error {
	if w.destroyed.Load() {
		return ErrDestroyed
	}
	return w.host.post(func() {
		if !w.destroyed.Load() {
			fn()
		}
	})
}

func (w *nativeWindow) Label() string { return w.label }

func (w *nativeWindow) InnerSize() (entity.Size, error) {
	if w.destroyed.Load() {
		return entity.Size{}, ErrDestroyed
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size, nil
}

func (w *nativeWindow) Show() error {
	return w.do(w.win.Present)
}

func (w *nativeWindow) Hide() error {
	return w.do(func() { w.win.SetVisible(false) })
}

// Close requests the window to close. A destroyed window is already
// closed.
func (w *nativeWindow) Close() error {
	if w.destroyed.Load() {
		return nil
	}
	err := w.do(w.win.Close)
	if errors.Is(err, ErrDestroyed) {
		return nil
	}
	return err
}

func (w *nativeWindow) IsMinimized() (bool, error) {
	var minimized bool
	err := w.do(func() { minimized = isMinimized(w.native()) })
	return minimized, err
}

func (w *nativeWindow) Minimize() error {
	return w.do(w.win.Minimize)
}

func (w *nativeWindow) Unminimize() error {
	return w.do(w.win.Unminimize)
}

func (w *nativeWindow) IsMaximized() (bool, error) {
	var maximized bool
	err := w.do(func() { maximized = w.win.IsMaximized() })
	return maximized, err
}

func (w *nativeWindow) Maximize() error {
	return w.do(w.win.Maximize)
}

func (w *nativeWindow) Unmaximize() error {
	return w.do(w.win.Unmaximize)
}

func (w *nativeWindow) StartDragging() error {
	var started bool
	if err := w.do(func() { started = beginMove(w.native()) }); err != nil {
		return err
	}
	if !started {
		return errors.New("window has no toplevel surface")
	}
	return nil
}
