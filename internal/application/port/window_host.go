package port

import (
	"context"

	"github.com/bnema/meikai/internal/domain/entity"
)

// SurfaceKind identifies which page a surface hosts.
type SurfaceKind int

const (
	// SurfaceContent hosts external web content.
	SurfaceContent SurfaceKind = iota
	// SurfaceTitleBar hosts the built-in title-bar page.
	SurfaceTitleBar
	// SurfacePanel hosts the built-in launcher page.
	SurfacePanel
)

// String returns a human-readable representation of the surface kind.
func (k SurfaceKind) String() string {
	switch k {
	case SurfaceTitleBar:
		return "titlebar"
	case SurfacePanel:
		return "panel"
	default:
		return "content"
	}
}

// NewWindowResponse tells the host what to do with an outgoing
// new-window request from a content surface.
type NewWindowResponse int

const (
	// NewWindowDeny drops the native pop-up. The request may have been
	// handled by opening a window group instead.
	NewWindowDeny NewWindowResponse = iota
	// NewWindowAllow lets the surface open its native pop-up unmodified.
	NewWindowAllow
)

// NewWindowHandler decides an outgoing new-window request for target.
// It is invoked on the host event loop and must not block for long.
type NewWindowHandler func(ctx context.Context, target string) NewWindowResponse

// WindowEventHandler receives toolkit window events.
type WindowEventHandler interface {
	// OnResized is called with the new inner size of the window.
	OnResized(ctx context.Context, windowLabel string, size entity.Size)
	// OnDestroyed is called once the window and all its surfaces are gone.
	OnDestroyed(ctx context.Context, windowLabel string)
}

// WindowSpec describes a top-level window to build.
type WindowSpec struct {
	Label     string
	Title     string
	Size      entity.Size
	Decorated bool
	Resizable bool
	Centered  bool
	Events    WindowEventHandler
}

// SurfaceSpec describes a surface to attach to an existing window.
type SurfaceSpec struct {
	Label       string
	WindowLabel string
	Kind        SurfaceKind
	Bounds      entity.SurfaceRect

	// URL is the address loaded by content surfaces. Title bars receive
	// it as the opened URL to display.
	URL string

	// ContentLabel is passed to title-bar pages so they can address the
	// content surface of their group.
	ContentLabel string

	// OnNewWindow is installed on content surfaces. Nil allows every
	// native pop-up.
	OnNewWindow NewWindowHandler

	DevTools bool
}

// NativeWindow is a toolkit top-level window.
type NativeWindow interface {
	Label() string
	InnerSize() (entity.Size, error)
	Show() error
	Hide() error
	Close() error
	IsMinimized() (bool, error)
	Minimize() error
	Unminimize() error
	IsMaximized() (bool, error)
	Maximize() error
	Unmaximize() error
	StartDragging() error
}

// NativeSurface is a toolkit web surface attached to a window.
type NativeSurface interface {
	Label() string
	URL() (string, error)
	SetBounds(rect entity.SurfaceRect) error
	LoadURL(url string) error
	GoBack() error
	GoForward() error
	Reload() error
}

// WindowLookup resolves window labels.
type WindowLookup interface {
	Window(label string) (NativeWindow, bool)
}

// SurfaceLookup resolves surface labels.
type SurfaceLookup interface {
	Surface(label string) (NativeSurface, bool)
}

// WindowHost is the windowing toolkit seen from the application layer.
// Lookups are safe to call from any goroutine.
type WindowHost interface {
	WindowLookup
	SurfaceLookup

	// PrimaryMonitor returns the primary monitor size, ok=false when no
	// monitor is detected.
	PrimaryMonitor() (entity.Size, bool)
	BuildWindow(ctx context.Context, spec WindowSpec) (NativeWindow, error)
	AttachSurface(ctx context.Context, spec SurfaceSpec) (NativeSurface, error)
}
