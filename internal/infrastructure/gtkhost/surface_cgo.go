//go:build webkit_cgo

package gtkhost

import (
	"context"
	"fmt"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/infrastructure/bridge"
	"github.com/bnema/meikai/internal/logging"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
)

// pageBaseURI is the base of built-in pages; they load no relative
// resources.
const pageBaseURI = "about:blank"

// nativeSurface is a WebKit web view placed in a window's fixed container.
type nativeSurface struct {
	label  string
	window *nativeWindow
	view   *webkit.WebView
	native uintptr

	ctx         context.Context
	onNewWindow port.NewWindowHandler
}

var _ port.NativeSurface = (*nativeSurface)(nil)

func (h *Host) newSurface(ctx context.Context, w *nativeWindow, spec port.SurfaceSpec, page string) (*nativeSurface, error) {
	if w.destroyed.Load() {
		return nil, ErrDestroyed
	}

	view := webkit.NewWebView()
	if settings := view.Settings(); settings != nil {
		settings.SetEnableDeveloperExtras(spec.DevTools)
	}

	s := &nativeSurface{
		label:       spec.Label,
		window:      w,
		view:        view,
		native:      coreglib.InternObject(view).Native(),
		ctx:         logging.WithWindowLabel(context.WithoutCancel(h.ctx), spec.Label),
		onNewWindow: spec.OnNewWindow,
	}
	handle := h.reg.handle(spec.Label)

	b := spec.Bounds
	view.SetSizeRequest(b.Width, b.Height)
	w.fixed.Put(view, float64(b.X), float64(b.Y))

	switch spec.Kind {
	case port.SurfaceContent:
		connectCreate(s.native, handle)
		view.LoadURI(spec.URL)
	default:
		if !registerMessageHandler(s.native, bridge.MessageHandlerName, handle) {
			w.fixed.Remove(view)
			return nil, fmt.Errorf("failed to register script message handler on %s", spec.Label)
		}
		view.LoadHTML(page, pageBaseURI)
	}

	// window.close() from content closes the whole group.
	view.ConnectClose(func() {
		if spec.Kind == port.SurfaceContent {
			w.win.Close()
			return
		}
		h.reg.removeSurface(spec.Label)
	})

	logging.FromContext(ctx).Debug().
		Str("label", spec.Label).
		Str("kind", spec.Kind.String()).
		Int("x", b.X).Int("y", b.Y).
		Int("width", b.Width).Int("height", b.Height).
		Msg("surface attached")

	return s, nil
}

func (s *nativeSurface) Label() string { return s.label }

func (s *nativeSurface) URL() (string, error) {
	var uri string
	err := s.window.do(func() { uri = s.view.URI() })
	return uri, err
}

func (s *nativeSurface) SetBounds(rect entity.SurfaceRect) error {
	return s.window.do(func() {
		s.view.SetSizeRequest(rect.Width, rect.Height)
		s.window.fixed.Move(s.view, float64(rect.X), float64(rect.Y))
	})
}

func (s *nativeSurface) LoadURL(url string) error {
	return s.window.do(func() { s.view.LoadURI(url) })
}

func (s *nativeSurface) GoBack() error {
	return s.window.do(s.view.GoBack)
}

func (s *nativeSurface) GoForward() error {
	return s.window.do(s.view.GoForward)
}

func (s *nativeSurface) Reload() error {
	return s.window.do(s.view.Reload)
}

func (s *nativeSurface) evaluate(script string) error {
	return s.window.post(func() { evaluateScript(s.native, script) })
}
