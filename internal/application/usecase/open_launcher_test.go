package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/meikai/internal/application/port"
	portmocks "github.com/bnema/meikai/internal/application/port/mocks"
	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenLauncher_UsesPanelSizing(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	window := portmocks.NewMockNativeWindow(t)

	host.EXPECT().Window(usecase.LauncherWindowLabel).Return(nil, false)
	host.EXPECT().PrimaryMonitor().Return(entity.Size{Width: 1920, Height: 1080}, true)
	host.EXPECT().BuildWindow(mock.Anything, mock.MatchedBy(func(spec port.WindowSpec) bool {
		return spec.Label == usecase.LauncherWindowLabel && spec.Size == entity.Size{Width: 902, Height: 601}
	})).Return(window, nil)
	host.EXPECT().AttachSurface(mock.Anything, port.SurfaceSpec{
		Label:       usecase.LauncherSurfaceLabel,
		WindowLabel: usecase.LauncherWindowLabel,
		Kind:        port.SurfacePanel,
		Bounds:      entity.SurfaceRect{Width: 902, Height: 601},
	}).Return(portmocks.NewMockNativeSurface(t), nil)
	window.EXPECT().Show().Return(nil)

	uc := usecase.NewOpenLauncherUseCase(host, nil, usecase.StaticSettings(usecase.DefaultShellSettings()))
	require.NoError(t, uc.Execute(ctx))
}

func TestOpenLauncher_PresentsExisting(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	window := portmocks.NewMockNativeWindow(t)

	host.EXPECT().Window(usecase.LauncherWindowLabel).Return(window, true)
	window.EXPECT().Show().Return(nil)

	uc := usecase.NewOpenLauncherUseCase(host, nil, usecase.StaticSettings(usecase.DefaultShellSettings()))
	require.NoError(t, uc.Execute(ctx))
}

func TestOpenLauncher_AttachFailure(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	window := portmocks.NewMockNativeWindow(t)

	host.EXPECT().Window(usecase.LauncherWindowLabel).Return(nil, false)
	host.EXPECT().PrimaryMonitor().Return(entity.Size{}, false)
	host.EXPECT().BuildWindow(mock.Anything, mock.Anything).Return(window, nil)
	host.EXPECT().AttachSurface(mock.Anything, mock.Anything).Return(nil, errors.New("no webkit"))
	window.EXPECT().Close().Return(nil)

	uc := usecase.NewOpenLauncherUseCase(host, nil, usecase.StaticSettings(usecase.DefaultShellSettings()))
	require.ErrorIs(t, uc.Execute(ctx), usecase.ErrPlatformWindow)
}
