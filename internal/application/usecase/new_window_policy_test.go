package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/meikai/internal/application/port"
	portmocks "github.com/bnema/meikai/internal/application/port/mocks"
	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type creatorFunc func(ctx context.Context, in usecase.CreateWindowInput) (*usecase.CreateWindowOutput, error)

func (f creatorFunc) Execute(ctx context.Context, in usecase.CreateWindowInput) (*usecase.CreateWindowOutput, error) {
	return f(ctx, in)
}

func failIfCalled(t *testing.T) creatorFunc {
	return func(context.Context, usecase.CreateWindowInput) (*usecase.CreateWindowOutput, error) {
		t.Fatal("window creator must not be called")
		return nil, nil
	}
}

func TestNewWindowPolicy_IdentityProviderPassesThrough(t *testing.T) {
	ctx := testContext()
	notifier := portmocks.NewMockNotifier(t)
	policy := usecase.NewNewWindowPolicy(notifier, usecase.StaticSettings(usecase.DefaultShellSettings()))

	for _, target := range []string{
		"https://accounts.google.com/signin/v2",
		"https://login.microsoftonline.com/common/oauth2/authorize",
		"https://appleid.apple.com/auth/authorize",
		"https://github.com/login/oauth/authorize",
	} {
		got := policy.Decide(ctx, failIfCalled(t), usecase.PopupRequest{TargetURL: target, ParentLabel: "content-1", Depth: 1})
		assert.Equal(t, port.NewWindowAllow, got, target)
	}
}

func TestNewWindowPolicy_InterceptsOrdinaryTarget(t *testing.T) {
	ctx := testContext()
	notifier := portmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, entity.NewWindowCreated{WindowLabel: "content-2", URL: "https://example.com/foo"}).Once()

	var got usecase.CreateWindowInput
	creator := creatorFunc(func(_ context.Context, in usecase.CreateWindowInput) (*usecase.CreateWindowOutput, error) {
		got = in
		return &usecase.CreateWindowOutput{ContentLabel: "content-2", URL: in.URL}, nil
	})

	policy := usecase.NewNewWindowPolicy(notifier, usecase.StaticSettings(usecase.DefaultShellSettings()))
	resp := policy.Decide(ctx, creator, usecase.PopupRequest{
		TargetURL:   "https://example.com/foo",
		ParentLabel: "content-1",
		Depth:       1,
	})

	assert.Equal(t, port.NewWindowDeny, resp)
	assert.Equal(t, usecase.CreateWindowInput{URL: "https://example.com/foo", ParentLabel: "content-1", Depth: 1}, got)
}

func TestNewWindowPolicy_CreationFailureIsSwallowed(t *testing.T) {
	ctx := testContext()
	notifier := portmocks.NewMockNotifier(t)
	creator := creatorFunc(func(context.Context, usecase.CreateWindowInput) (*usecase.CreateWindowOutput, error) {
		return nil, errors.New("boom")
	})

	policy := usecase.NewNewWindowPolicy(notifier, usecase.StaticSettings(usecase.DefaultShellSettings()))
	resp := policy.Decide(ctx, creator, usecase.PopupRequest{TargetURL: "https://example.com/foo", Depth: 1})

	assert.Equal(t, port.NewWindowDeny, resp)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNewWindowPolicy_DepthLimit(t *testing.T) {
	ctx := testContext()
	notifier := portmocks.NewMockNotifier(t)
	settings := usecase.DefaultShellSettings()
	settings.MaxPopupDepth = 2

	policy := usecase.NewNewWindowPolicy(notifier, usecase.StaticSettings(settings))
	resp := policy.Decide(ctx, failIfCalled(t), usecase.PopupRequest{TargetURL: "https://example.com/foo", Depth: 3})

	assert.Equal(t, port.NewWindowDeny, resp)
}

func TestNewWindowPolicy_Deterministic(t *testing.T) {
	ctx := testContext()
	notifier := portmocks.NewMockNotifier(t)
	settings := usecase.DefaultShellSettings()
	settings.MaxPopupDepth = 1
	policy := usecase.NewNewWindowPolicy(notifier, usecase.StaticSettings(settings))

	for i := 0; i < 5; i++ {
		assert.Equal(t, port.NewWindowAllow,
			policy.Decide(ctx, failIfCalled(t), usecase.PopupRequest{TargetURL: "https://accounts.google.com/x", Depth: 9}))
		assert.Equal(t, port.NewWindowDeny,
			policy.Decide(ctx, failIfCalled(t), usecase.PopupRequest{TargetURL: "https://example.com/foo", Depth: 9}))
	}
}
