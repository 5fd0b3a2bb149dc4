//go:build !webkit_cgo

package gtkhost

import (
	"context"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/rs/zerolog"
)

// IsNativeAvailable reports whether the GTK/WebKit backend is compiled in.
func IsNativeAvailable() bool { return false }

// InstallGLibLogHandler is a no-op without the native backend.
func InstallGLibLogHandler(zerolog.Logger) {}

// Host is the placeholder used when the native backend is not compiled in.
type Host struct{}

// New always fails with ErrNativeUnavailable.
func New(context.Context, Options) (*Host, error) {
	return nil, ErrNativeUnavailable
}

func (h *Host) SetMessageHandler(MessageFunc) {}

func (h *Host) Run(context.Context, func(context.Context) error) error {
	return ErrNativeUnavailable
}

func (h *Host) Quit() {}

func (h *Host) Window(string) (port.NativeWindow, bool) { return nil, false }

func (h *Host) Surface(string) (port.NativeSurface, bool) { return nil, false }

func (h *Host) PrimaryMonitor() (entity.Size, bool) { return entity.Size{}, false }

func (h *Host) BuildWindow(context.Context, port.WindowSpec) (port.NativeWindow, error) {
	return nil, ErrNativeUnavailable
}

func (h *Host) AttachSurface(context.Context, port.SurfaceSpec) (port.NativeSurface, error) {
	return nil, ErrNativeUnavailable
}

func (h *Host) UISurfaces() []string { return nil }

func (h *Host) EvaluateScript(string, string) error { return ErrNativeUnavailable }
