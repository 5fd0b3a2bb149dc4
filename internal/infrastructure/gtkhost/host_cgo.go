//go:build webkit_cgo

package gtkhost

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/logging"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// IsNativeAvailable reports whether the GTK/WebKit backend is compiled in.
func IsNativeAvailable() bool { return true }

// Host owns the GTK application and every window built through it.
// Toolkit calls made off the GTK thread are marshalled onto it and wait
// for completion.
type Host struct {
	ctx  context.Context
	app  *gtk.Application
	reg  *registry
	opts Options

	running  atomic.Bool
	stopped  chan struct{}
	stopOnce sync.Once

	msgMu     sync.RWMutex
	onMessage MessageFunc
}

// New creates the host. The application does not start until Run.
func New(ctx context.Context, opts Options) (*Host, error) {
	if opts.AppID == "" {
		opts.AppID = DefaultAppID
	}
	h := &Host{
		ctx:     logging.WithComponent(ctx, "gtkhost"),
		app:     gtk.NewApplication(opts.AppID, gio.ApplicationNonUnique),
		reg:     newRegistry(),
		opts:    opts,
		stopped: make(chan struct{}),
	}
	if !activeHost.CompareAndSwap(nil, h) {
		return nil, errors.New("a gtk host is already active in this process")
	}
	return h, nil
}

// SetMessageHandler installs the receiver of script messages posted by
// title-bar and panel pages.
func (h *Host) SetMessageHandler(fn MessageFunc) {
	h.msgMu.Lock()
	defer h.msgMu.Unlock()
	h.onMessage = fn
}

// Run starts the GTK application and blocks until the last window is
// closed, Quit is called or ctx is cancelled. activate runs on the GTK
// thread once the application is ready; an error from it stops the
// application and is returned.
func (h *Host) Run(ctx context.Context, activate func(ctx context.Context) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := logging.FromContext(h.ctx)

	var activateErr error
	h.app.ConnectActivate(func() {
		h.running.Store(true)
		log.Debug().Msg("gtk application activated")
		if err := activate(ctx); err != nil {
			activateErr = err
			h.app.Quit()
		}
	})

	go func() {
		select {
		case <-ctx.Done():
			h.Quit()
		case <-h.stopped:
		}
	}()

	status := h.app.Run(os.Args[:1])
	h.stop()
	activeHost.CompareAndSwap(h, nil)

	log.Debug().Int("status", status).Msg("gtk application stopped")

	if activateErr != nil {
		return activateErr
	}
	if status != 0 {
		return fmt.Errorf("gtk application exited with status %d", status)
	}
	return nil
}

// Quit stops the application from any goroutine.
func (h *Host) Quit() {
	if !h.running.Load() {
		return
	}
	glib.IdleAdd(func() bool {
		h.app.Quit()
		return false
	})
}

func (h *Host) stop() {
	h.stopOnce.Do(func() {
		h.running.Store(false)
		close(h.stopped)
	})
}

// invoke runs fn on the GTK thread and waits for it.
func (h *Host) invoke(fn func()) error {
	if isMainThread() {
		fn()
		return nil
	}
	if !h.running.Load() {
		return ErrNotRunning
	}

	done := make(chan struct{})
	glib.IdleAdd(func() bool {
		defer close(done)
		fn()
		return false
	})

	select {
	case <-done:
		return nil
	case <-h.stopped:
		return ErrNotRunning
	}
}

// post queues fn on the GTK thread without waiting for it. On the GTK
// thread fn runs inline.
func (h *Host) post(fn func()) error {
	if isMainThread() {
		fn()
		return nil
	}
	if !h.running.Load() {
		return ErrNotRunning
	}
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
	return nil
}

// Window implements port.WindowLookup.
func (h *Host) Window(label string) (port.NativeWindow, bool) {
	return h.reg.Window(label)
}

// Surface implements port.SurfaceLookup.
func (h *Host) Surface(label string) (port.NativeSurface, bool) {
	return h.reg.Surface(label)
}

// PrimaryMonitor implements port.WindowHost. GDK has no primary monitor,
// the first one listed is used.
func (h *Host) PrimaryMonitor() (entity.Size, bool) {
	var (
		size entity.Size
		ok   bool
	)
	if err := h.invoke(func() { size, ok = primaryMonitor() }); err != nil {
		return entity.Size{}, false
	}
	return size, ok
}

// BuildWindow implements port.WindowHost. The window stays hidden until
// Show.
func (h *Host) BuildWindow(ctx context.Context, spec port.WindowSpec) (port.NativeWindow, error) {
	if spec.Label == "" {
		return nil, errors.New("window label is required")
	}
	if _, exists := h.reg.Window(spec.Label); exists {
		return nil, fmt.Errorf("%w: %s", ErrLabelInUse, spec.Label)
	}

	var w *nativeWindow
	if err := h.invoke(func() { w = h.newWindow(ctx, spec) }); err != nil {
		return nil, err
	}
	if !h.reg.addWindow(w) {
		_ = h.invoke(w.win.Destroy)
		return nil, fmt.Errorf("%w: %s", ErrLabelInUse, spec.Label)
	}
	return w, nil
}

// AttachSurface implements port.WindowHost.
func (h *Host) AttachSurface(ctx context.Context, spec port.SurfaceSpec) (port.NativeSurface, error) {
	found, ok := h.reg.Window(spec.WindowLabel)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWindowNotFound, spec.WindowLabel)
	}
	w, ok := found.(*nativeWindow)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWindowNotFound, spec.WindowLabel)
	}
	if _, exists := h.reg.Surface(spec.Label); exists {
		return nil, fmt.Errorf("%w: %s", ErrLabelInUse, spec.Label)
	}

	var page string
	if spec.Kind != port.SurfaceContent {
		rendered, err := renderPage(spec, w.title)
		if err != nil {
			return nil, err
		}
		page = rendered
	}

	var (
		s   *nativeSurface
		err error
	)
	if invokeErr := h.invoke(func() { s, err = h.newSurface(ctx, w, spec, page) }); invokeErr != nil {
		return nil, invokeErr
	}
	if err != nil {
		return nil, err
	}
	if !h.reg.addSurface(s, spec.Kind, spec.WindowLabel) {
		return nil, fmt.Errorf("%w: %s", ErrLabelInUse, spec.Label)
	}
	return s, nil
}

// UISurfaces implements bridge.ScriptSink.
func (h *Host) UISurfaces() []string {
	return h.reg.uiSurfaces()
}

// EvaluateScript implements bridge.ScriptSink. The script is queued on the
// GTK thread and the call returns without waiting for it to run.
func (h *Host) EvaluateScript(label, script string) error {
	found, ok := h.reg.Surface(label)
	if !ok {
		return fmt.Errorf("surface %s not found", label)
	}
	s, ok := found.(*nativeSurface)
	if !ok {
		return fmt.Errorf("surface %s is not native", label)
	}
	return s.evaluate(script)
}

func (h *Host) handleScriptMessage(handle uint64, raw []byte) {
	label, ok := h.reg.labelOf(handle)
	if !ok {
		return
	}
	h.msgMu.RLock()
	fn := h.onMessage
	h.msgMu.RUnlock()
	if fn == nil {
		logging.FromContext(h.ctx).Debug().Str("sender", label).Msg("script message dropped: no handler")
		return
	}
	fn(label, raw)
}

// decideNewWindow runs the new-window handler of a content surface. It
// returns the opener's native view when the native pop-up is allowed.
func (h *Host) decideNewWindow(handle uint64, target string) (uintptr, bool) {
	label, ok := h.reg.labelOf(handle)
	if !ok {
		return 0, false
	}
	found, ok := h.reg.Surface(label)
	if !ok {
		return 0, false
	}
	s, ok := found.(*nativeSurface)
	if !ok {
		return 0, false
	}
	if s.onNewWindow == nil {
		return s.native, true
	}
	if s.onNewWindow(s.ctx, target) == port.NewWindowAllow {
		return s.native, true
	}
	return 0, false
}
