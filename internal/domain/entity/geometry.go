package entity

import "math"

// Fallback window dimensions used when no monitor is detected and the
// configured fallback is unusable.
const (
	DefaultFallbackWidth  = 1400
	DefaultFallbackHeight = 800
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// SurfaceRect is a surface's position and size relative to its window.
type SurfaceRect struct {
	X, Y   int
	Width  int
	Height int
}

// Bottom returns the y coordinate just below the rectangle.
func (r SurfaceRect) Bottom() int {
	return r.Y + r.Height
}

// Area returns width*height.
func (r SurfaceRect) Area() int {
	return r.Width * r.Height
}

// SurfaceLayout holds the rectangles of both surfaces of a window group.
type SurfaceLayout struct {
	TitleBar SurfaceRect
	Content  SurfaceRect
}

// LayoutSurfaces splits a window of width x height into a title bar of
// titleBarHeight pixels and a content area below it.
// When height < titleBarHeight the content height is clamped to 0.
func LayoutSurfaces(width, height, titleBarHeight int) SurfaceLayout {
	width = max(width, 0)
	height = max(height, 0)
	titleBarHeight = max(titleBarHeight, 0)

	return SurfaceLayout{
		TitleBar: SurfaceRect{X: 0, Y: 0, Width: width, Height: titleBarHeight},
		Content:  SurfaceRect{X: 0, Y: titleBarHeight, Width: width, Height: max(height-titleBarHeight, 0)},
	}
}

// SizingMode selects how the initial window size is computed.
type SizingMode string

const (
	// SizingFixed uses fixed pixel dimensions.
	SizingFixed SizingMode = "fixed"
	// SizingPercent uses a width and a height percentage of the monitor.
	SizingPercent SizingMode = "percent"
	// SizingAspect uses a width percentage and derives the height from an aspect ratio.
	SizingAspect SizingMode = "aspect"
)

// SizingConfig describes how to compute an initial window size.
type SizingConfig struct {
	Mode SizingMode

	// Width and Height are used by SizingFixed.
	Width  int
	Height int

	// WidthPercent and HeightPercent are fractions of the monitor (0.73 = 73%).
	WidthPercent  float64
	HeightPercent float64

	// AspectWidth:AspectHeight is used by SizingAspect (3:2 => 3, 2).
	AspectWidth  float64
	AspectHeight float64

	// FallbackWidth and FallbackHeight are used without a monitor.
	FallbackWidth  int
	FallbackHeight int
}

// ResolveWindowSize computes the initial window size.
// monitor is nil when no monitor could be detected.
// The result is always strictly positive.
func ResolveWindowSize(monitor *Size, cfg SizingConfig) Size {
	fallback := fallbackSize(cfg)

	if cfg.Mode == SizingFixed {
		if cfg.Width > 0 && cfg.Height > 0 {
			return Size{Width: cfg.Width, Height: cfg.Height}
		}
		return fallback
	}

	if monitor == nil || monitor.Width <= 0 || monitor.Height <= 0 {
		return fallback
	}

	if !positiveFinite(cfg.WidthPercent) {
		return fallback
	}
	width := roundPositive(float64(monitor.Width) * cfg.WidthPercent)

	var height int
	switch cfg.Mode {
	case SizingAspect:
		if !positiveFinite(cfg.AspectWidth) || !positiveFinite(cfg.AspectHeight) {
			return fallback
		}
		height = roundPositive(float64(width) * cfg.AspectHeight / cfg.AspectWidth)
	default:
		if !positiveFinite(cfg.HeightPercent) {
			return fallback
		}
		height = roundPositive(float64(monitor.Height) * cfg.HeightPercent)
	}

	if width <= 0 || height <= 0 {
		return fallback
	}
	return Size{Width: width, Height: height}
}

func fallbackSize(cfg SizingConfig) Size {
	if cfg.FallbackWidth > 0 && cfg.FallbackHeight > 0 {
		return Size{Width: cfg.FallbackWidth, Height: cfg.FallbackHeight}
	}
	return Size{Width: DefaultFallbackWidth, Height: DefaultFallbackHeight}
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// roundPositive rounds half away from zero and maps overflow to 0 so the
// caller falls back.
func roundPositive(f float64) int {
	r := math.Round(f)
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 1 || r > math.MaxInt32 {
		return 0
	}
	return int(r)
}
