package gtkhost

import (
	"testing"

	"github.com/bnema/meikai/internal/application/port"
	portmocks "github.com/bnema/meikai/internal/application/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func surfaceMock(t *testing.T, label string) *portmocks.MockNativeSurface {
	s := portmocks.NewMockNativeSurface(t)
	s.EXPECT().Label().Return(label).Maybe()
	return s
}

func TestRegistry_WindowLifecycle(t *testing.T) {
	r := newRegistry()

	w := portmocks.NewMockNativeWindow(t)
	w.EXPECT().Label().Return("window-1").Maybe()

	require.True(t, r.addWindow(w))
	assert.False(t, r.addWindow(w), "duplicate label")

	require.True(t, r.addSurface(surfaceMock(t, "titlebar-1"), port.SurfaceTitleBar, "window-1"))
	require.True(t, r.addSurface(surfaceMock(t, "content-1"), port.SurfaceContent, "window-1"))
	require.True(t, r.addSurface(surfaceMock(t, "main-panel"), port.SurfacePanel, "main"))

	got, ok := r.Window("window-1")
	require.True(t, ok)
	assert.Same(t, w, got)
	assert.Equal(t, []string{"main-panel", "titlebar-1"}, r.uiSurfaces())

	removed := r.removeWindow("window-1")
	assert.Equal(t, []string{"content-1", "titlebar-1"}, removed)

	_, ok = r.Window("window-1")
	assert.False(t, ok)
	_, ok = r.Surface("content-1")
	assert.False(t, ok)
	_, ok = r.Surface("main-panel")
	assert.True(t, ok)
	assert.Zero(t, r.windowCount())
}

func TestRegistry_HandlesAreDroppedWithTheirLabel(t *testing.T) {
	r := newRegistry()
	require.True(t, r.addSurface(surfaceMock(t, "content-1"), port.SurfaceContent, "window-1"))

	h := r.handle("content-1")
	other := r.handle("content-2")
	assert.NotEqual(t, h, other)

	label, ok := r.labelOf(h)
	require.True(t, ok)
	assert.Equal(t, "content-1", label)

	r.removeWindow("window-1")

	_, ok = r.labelOf(h)
	assert.False(t, ok)
	_, ok = r.labelOf(other)
	assert.True(t, ok)
}
