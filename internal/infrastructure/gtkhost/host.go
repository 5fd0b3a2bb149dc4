// Package gtkhost implements the window host on GTK4 and WebKitGTK 6.
//
// The native backend is compiled with the webkit_cgo build tag. Without it
// New returns ErrNativeUnavailable and the rest of the binary still builds.
package gtkhost

import (
	"errors"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/infrastructure/bridge"
)

// DefaultAppID is the GApplication identifier.
const DefaultAppID = "io.github.bnema.meikai"

// Native pop-up windows opened for identity providers.
const (
	popupWidth  = 520
	popupHeight = 680
)

var (
	// ErrNativeUnavailable is returned when the binary was built without
	// the webkit_cgo tag.
	ErrNativeUnavailable = errors.New("native GTK/WebKit backend not compiled in (build with -tags webkit_cgo)")

	// ErrNotRunning is returned for toolkit calls made before the
	// application is activated or after it stopped.
	ErrNotRunning = errors.New("gtk application is not running")

	// ErrLabelInUse is returned when building a window or surface whose
	// label is already registered.
	ErrLabelInUse = errors.New("label already in use")

	// ErrWindowNotFound is returned when attaching a surface to an
	// unknown window.
	ErrWindowNotFound = errors.New("window not found")

	// ErrDestroyed is returned by operations on a destroyed window or
	// surface.
	ErrDestroyed = errors.New("window destroyed")
)

// MessageFunc receives raw script messages posted by built-in pages.
type MessageFunc func(sender string, raw []byte)

// Options configures the host.
type Options struct {
	AppID string
}

var (
	_ port.WindowHost   = (*Host)(nil)
	_ bridge.ScriptSink = (*Host)(nil)
)
