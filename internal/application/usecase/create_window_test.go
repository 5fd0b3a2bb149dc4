package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/meikai/internal/application/port"
	portmocks "github.com/bnema/meikai/internal/application/port/mocks"
	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type watchRecorder struct {
	labels []string
}

func (w *watchRecorder) Watch(_ context.Context, label string) error {
	w.labels = append(w.labels, label)
	return nil
}

func testSettings() usecase.ShellSettings {
	s := usecase.DefaultShellSettings()
	s.TitleBarHeight = 40
	return s
}

func TestCreateWindowUseCase_ReturnsContentLabel(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	window := portmocks.NewMockNativeWindow(t)
	registry := usecase.NewWindowRegistry(0)
	monitor := &watchRecorder{}

	var specs []port.SurfaceSpec
	host.EXPECT().PrimaryMonitor().Return(entity.Size{Width: 1920, Height: 1080}, true)
	host.EXPECT().BuildWindow(mock.Anything, mock.MatchedBy(func(spec port.WindowSpec) bool {
		return strings.HasPrefix(spec.Label, "window-") &&
			!spec.Decorated && spec.Resizable && spec.Centered &&
			spec.Size == entity.Size{Width: 1402, Height: 799}
	})).Return(window, nil)
	host.EXPECT().AttachSurface(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec port.SurfaceSpec) (port.NativeSurface, error) {
			specs = append(specs, spec)
			return portmocks.NewMockNativeSurface(t), nil
		}).Times(2)
	window.EXPECT().Show().Return(nil)

	uc := usecase.NewCreateWindowUseCase(host, registry, monitor, nil, nil, usecase.StaticSettings(testSettings()))
	out, err := uc.Execute(ctx, usecase.CreateWindowInput{URL: "https://example.com"})
	require.NoError(t, err)

	id, found := strings.CutPrefix(out.ContentLabel, "content-")
	require.True(t, found)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, "window-"+id, entity.ParentOf(out.ContentLabel))
	assert.Equal(t, "https://example.com", out.URL)

	require.Len(t, specs, 2)
	assert.Equal(t, port.SurfaceTitleBar, specs[0].Kind)
	assert.Equal(t, "titlebar-"+id, specs[0].Label)
	assert.Equal(t, out.ContentLabel, specs[0].ContentLabel)
	assert.Equal(t, entity.SurfaceRect{Width: 1402, Height: 40}, specs[0].Bounds)
	assert.Equal(t, port.SurfaceContent, specs[1].Kind)
	assert.Equal(t, out.ContentLabel, specs[1].Label)
	assert.Equal(t, entity.SurfaceRect{Y: 40, Width: 1402, Height: 759}, specs[1].Bounds)

	assert.Equal(t, []string{out.ContentLabel}, monitor.labels)
	assert.Equal(t, 1, registry.Len())
}

func TestCreateWindowUseCase_NoMonitorUsesFallback(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	window := portmocks.NewMockNativeWindow(t)

	host.EXPECT().PrimaryMonitor().Return(entity.Size{}, false)
	host.EXPECT().BuildWindow(mock.Anything, mock.MatchedBy(func(spec port.WindowSpec) bool {
		return spec.Size == entity.Size{Width: 1400, Height: 800}
	})).Return(window, nil)
	host.EXPECT().AttachSurface(mock.Anything, mock.Anything).Return(portmocks.NewMockNativeSurface(t), nil).Times(2)
	window.EXPECT().Show().Return(nil)

	uc := usecase.NewCreateWindowUseCase(host, nil, nil, nil, nil, usecase.StaticSettings(testSettings()))
	_, err := uc.Execute(ctx, usecase.CreateWindowInput{URL: "https://example.com"})
	require.NoError(t, err)
}

func TestCreateWindowUseCase_InvalidURLCreatesNothing(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	registry := usecase.NewWindowRegistry(0)

	uc := usecase.NewCreateWindowUseCase(host, registry, nil, nil, nil, usecase.StaticSettings(testSettings()))

	for _, raw := range []string{"", "not a url", "example.com", "javascript:alert(1)"} {
		_, err := uc.Execute(ctx, usecase.CreateWindowInput{URL: raw})
		require.ErrorIs(t, err, usecase.ErrInvalidURL, raw)
	}
	assert.Zero(t, registry.Len())
}

func TestCreateWindowUseCase_BuildFailureIsPlatformError(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	registry := usecase.NewWindowRegistry(0)
	toolkitErr := errors.New("no display")

	host.EXPECT().PrimaryMonitor().Return(entity.Size{}, false)
	host.EXPECT().BuildWindow(mock.Anything, mock.Anything).Return(nil, toolkitErr)

	uc := usecase.NewCreateWindowUseCase(host, registry, nil, nil, nil, usecase.StaticSettings(testSettings()))
	_, err := uc.Execute(ctx, usecase.CreateWindowInput{URL: "https://example.com"})

	require.ErrorIs(t, err, usecase.ErrPlatformWindow)
	require.ErrorIs(t, err, toolkitErr)
	assert.Zero(t, registry.Len())
}

func TestCreateWindowUseCase_AttachFailureClosesWindow(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	window := portmocks.NewMockNativeWindow(t)
	registry := usecase.NewWindowRegistry(0)
	monitor := &watchRecorder{}

	host.EXPECT().PrimaryMonitor().Return(entity.Size{}, false)
	host.EXPECT().BuildWindow(mock.Anything, mock.Anything).Return(window, nil)
	host.EXPECT().AttachSurface(mock.Anything, mock.MatchedBy(func(s port.SurfaceSpec) bool {
		return s.Kind == port.SurfaceTitleBar
	})).Return(portmocks.NewMockNativeSurface(t), nil)
	host.EXPECT().AttachSurface(mock.Anything, mock.MatchedBy(func(s port.SurfaceSpec) bool {
		return s.Kind == port.SurfaceContent
	})).Return(nil, errors.New("webview failed"))
	window.EXPECT().Close().Return(nil)

	uc := usecase.NewCreateWindowUseCase(host, registry, monitor, nil, nil, usecase.StaticSettings(testSettings()))
	_, err := uc.Execute(ctx, usecase.CreateWindowInput{URL: "https://example.com"})

	require.ErrorIs(t, err, usecase.ErrPlatformWindow)
	assert.Zero(t, registry.Len())
	assert.Empty(t, monitor.labels)
}

func TestCreateWindowUseCase_WindowLimit(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	window := portmocks.NewMockNativeWindow(t)
	registry := usecase.NewWindowRegistry(1)

	host.EXPECT().PrimaryMonitor().Return(entity.Size{}, false).Once()
	host.EXPECT().BuildWindow(mock.Anything, mock.Anything).Return(window, nil).Once()
	host.EXPECT().AttachSurface(mock.Anything, mock.Anything).Return(portmocks.NewMockNativeSurface(t), nil).Times(2)
	window.EXPECT().Show().Return(nil).Once()

	uc := usecase.NewCreateWindowUseCase(host, registry, nil, nil, nil, usecase.StaticSettings(testSettings()))
	_, err := uc.Execute(ctx, usecase.CreateWindowInput{URL: "https://one.test"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, usecase.CreateWindowInput{URL: "https://two.test"})
	require.ErrorIs(t, err, usecase.ErrWindowLimit)
	assert.Equal(t, 1, registry.Len())
}

func TestCreateWindowUseCase_InstallsPopupPolicy(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	notifier := portmocks.NewMockNotifier(t)
	registry := usecase.NewWindowRegistry(0)

	ids := []entity.LogicalWindowID{"parent", "child"}
	handlers := map[string]port.NewWindowHandler{}

	host.EXPECT().PrimaryMonitor().Return(entity.Size{}, false)
	host.EXPECT().BuildWindow(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec port.WindowSpec) (port.NativeWindow, error) {
			w := portmocks.NewMockNativeWindow(t)
			w.EXPECT().Show().Return(nil)
			return w, nil
		})
	host.EXPECT().AttachSurface(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec port.SurfaceSpec) (port.NativeSurface, error) {
			if spec.Kind == port.SurfaceContent {
				handlers[spec.Label] = spec.OnNewWindow
			}
			return portmocks.NewMockNativeSurface(t), nil
		})
	notifier.EXPECT().Notify(mock.Anything, entity.NewWindowCreated{
		WindowLabel: "content-child",
		URL:         "https://example.com/foo",
	}).Once()

	settings := usecase.StaticSettings(testSettings())
	policy := usecase.NewNewWindowPolicy(notifier, settings)
	uc := usecase.NewCreateWindowUseCase(host, registry, nil, nil, policy, settings)
	uc.SetIDGenerator(func() entity.LogicalWindowID {
		id := ids[0]
		ids = ids[1:]
		return id
	})

	_, err := uc.Execute(ctx, usecase.CreateWindowInput{URL: "https://example.com"})
	require.NoError(t, err)

	onNewWindow := handlers["content-parent"]
	require.NotNil(t, onNewWindow)

	assert.Equal(t, port.NewWindowAllow, onNewWindow(ctx, "https://accounts.google.com/o/oauth2/auth"))
	assert.Equal(t, 1, registry.Len())

	assert.Equal(t, port.NewWindowDeny, onNewWindow(ctx, "https://example.com/foo"))
	assert.Equal(t, 2, registry.Len())

	child, ok := registry.Lookup("content-child")
	require.True(t, ok)
	assert.Equal(t, "content-parent", child.ParentLabel)
	assert.Equal(t, 1, child.Depth)
	assert.NotNil(t, handlers["content-child"])
}
