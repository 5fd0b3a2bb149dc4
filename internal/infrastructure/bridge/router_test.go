package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/meikai/internal/infrastructure/bridge/mocks"
	"github.com/bnema/meikai/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func TestRouter_RegisterHandlerValidation(t *testing.T) {
	r := NewRouter(testContext(), nil)

	assert.Error(t, r.RegisterHandler("", HandlerFunc(nil)))
	assert.Error(t, r.RegisterHandler("ping", nil))
	require.NoError(t, r.RegisterHandler("ping", HandlerFunc(func(context.Context, string, json.RawMessage) (any, error) {
		return "pong", nil
	})))
	assert.Equal(t, []string{"ping"}, r.Types())
}

func TestRouter_Dispatch(t *testing.T) {
	r := NewRouter(testContext(), nil)
	require.NoError(t, r.RegisterHandler("echo", HandlerFunc(func(_ context.Context, sender string, payload json.RawMessage) (any, error) {
		return sender + ":" + string(payload), nil
	})))
	require.NoError(t, r.RegisterHandler("fail", HandlerFunc(func(context.Context, string, json.RawMessage) (any, error) {
		return nil, errors.New("boom")
	})))

	ok := r.Dispatch(testContext(), "titlebar-1", Request{Type: "echo", Payload: json.RawMessage(`{"a":1}`)})
	assert.Equal(t, Response{OK: true, Result: `titlebar-1:{"a":1}`}, ok)

	failed := r.Dispatch(testContext(), "titlebar-1", Request{Type: "fail"})
	assert.Equal(t, Response{Error: "boom"}, failed)

	unknown := r.Dispatch(testContext(), "titlebar-1", Request{Type: "nope"})
	assert.False(t, unknown.OK)
	assert.Contains(t, unknown.Error, "unknown command")
}

func TestRouter_HandleMessageRespondsToSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockScriptSink(ctrl)

	var script string
	sink.EXPECT().
		EvaluateScript("main-panel", gomock.Any()).
		DoAndReturn(func(_, s string) error {
			script = s
			return nil
		})

	r := NewRouter(testContext(), sink)
	require.NoError(t, r.RegisterHandler("resolveInput", HandlerFunc(func(context.Context, string, json.RawMessage) (any, error) {
		return "https://example.com", nil
	})))

	r.HandleMessage("main-panel", []byte(`{"type":"resolveInput","requestId":"r-1","payload":{"input":"example.com"}}`))
	r.Wait()

	assert.True(t, strings.Contains(script, `window.__meikaiResolve("r-1",{"ok":true,"result":"https://example.com"})`), script)
}

func TestRouter_HandleMessageWithoutRequestIDIsFireAndForget(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockScriptSink(ctrl)
	sink.EXPECT().EvaluateScript(gomock.Any(), gomock.Any()).Times(0)

	called := make(chan struct{}, 1)
	r := NewRouter(testContext(), sink)
	require.NoError(t, r.RegisterHandler("drag", HandlerFunc(func(context.Context, string, json.RawMessage) (any, error) {
		called <- struct{}{}
		return nil, nil
	})))

	r.HandleMessage("titlebar-1", []byte(`{"type":"drag","payload":{"label":"titlebar-1"}}`))
	r.Wait()

	assert.Len(t, called, 1)
}

func TestRouter_HandleMessageIgnoresMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockScriptSink(ctrl)

	r := NewRouter(testContext(), sink)
	r.HandleMessage("main-panel", []byte(`not json`))
	r.HandleMessage("main-panel", []byte(`{"requestId":"x"}`))
	r.Wait()
}

func TestResolveScript_EscapesRequestID(t *testing.T) {
	script, err := resolveScript(`a"b`, Response{Error: "bad"})
	require.NoError(t, err)
	assert.Contains(t, script, `window.__meikaiResolve("a\"b",{"ok":false,"error":"bad"})`)
}
