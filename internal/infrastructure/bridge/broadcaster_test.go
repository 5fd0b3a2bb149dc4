package bridge

import (
	"errors"
	"testing"

	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/infrastructure/bridge/mocks"
	"go.uber.org/mock/gomock"
)

func TestBroadcaster_NotifiesEveryUISurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockScriptSink(ctrl)

	want := `window.dispatchEvent(new CustomEvent("meikai:url-changed",{detail:{"url":"https://example.com/b","windowLabel":"content-1"}}));`

	sink.EXPECT().UISurfaces().Return([]string{"main-panel", "titlebar-1", "titlebar-2"})
	gomock.InOrder(
		sink.EXPECT().EvaluateScript("main-panel", want).Return(nil),
		sink.EXPECT().EvaluateScript("titlebar-1", want).Return(errors.New("gone")),
		sink.EXPECT().EvaluateScript("titlebar-2", want).Return(nil),
	)

	NewBroadcaster(sink).Notify(testContext(), entity.URLChanged{
		URL:         "https://example.com/b",
		WindowLabel: "content-1",
	})
}

func TestBroadcaster_WindowClosedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockScriptSink(ctrl)

	sink.EXPECT().UISurfaces().Return([]string{"main-panel"})
	sink.EXPECT().EvaluateScript("main-panel",
		`window.dispatchEvent(new CustomEvent("meikai:window-closed",{detail:{"windowLabel":"content-7"}}));`,
	).Return(nil)

	NewBroadcaster(sink).Notify(testContext(), entity.WindowClosed{WindowLabel: "content-7"})
}

func TestBroadcaster_NoSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockScriptSink(ctrl)
	sink.EXPECT().UISurfaces().Return(nil)

	NewBroadcaster(sink).Notify(testContext(), entity.NewWindowCreated{WindowLabel: "content-2", URL: "https://example.com"})
}
