package bridge

import (
	"context"
	"encoding/json"
	"testing"

	portmocks "github.com/bnema/meikai/internal/application/port/mocks"
	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	inputs []usecase.CreateWindowInput
	err    error
}

func (f *fakeCreator) Execute(_ context.Context, in usecase.CreateWindowInput) (*usecase.CreateWindowOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	g := entity.NewWindowGroup("abc")
	return &usecase.CreateWindowOutput{
		Group:        g,
		WindowLabel:  g.WindowLabel(),
		ContentLabel: g.ContentLabel(),
		URL:          in.URL,
	}, nil
}

type fakeMonitor struct {
	watched []string
}

func (m *fakeMonitor) Watch(_ context.Context, label string) error {
	m.watched = append(m.watched, label)
	return nil
}

func dispatch(t *testing.T, r *Router, cmd, payload string) Response {
	t.Helper()
	return r.Dispatch(testContext(), "titlebar-abc", Request{Type: cmd, RequestID: "1", Payload: json.RawMessage(payload)})
}

func TestCommands_RegisterOnlyAvailable(t *testing.T) {
	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{
		ResolveInput: usecase.NewResolveInputUseCase(usecase.StaticSettings(usecase.DefaultShellSettings())),
	}.Register(r))

	assert.Equal(t, []string{CmdResolveInput}, r.Types())
}

func TestCommands_CreateWindowReturnsContentLabel(t *testing.T) {
	creator := &fakeCreator{}
	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{CreateWindow: creator}.Register(r))

	resp := dispatch(t, r, CmdCreateWindow, `{"url":"https://example.com"}`)

	assert.Equal(t, Response{OK: true, Result: "content-abc"}, resp)
	require.Len(t, creator.inputs, 1)
	assert.Equal(t, "https://example.com", creator.inputs[0].URL)
	assert.Zero(t, creator.inputs[0].Depth)
}

func TestCommands_CreateWindowErrorBecomesString(t *testing.T) {
	creator := &fakeCreator{err: usecase.ErrInvalidURL}
	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{CreateWindow: creator}.Register(r))

	resp := dispatch(t, r, CmdCreateWindow, `{"url":"::"}`)

	assert.Equal(t, Response{Error: "invalid url"}, resp)
}

func TestCommands_InvalidPayload(t *testing.T) {
	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{CreateWindow: &fakeCreator{}}.Register(r))

	resp := dispatch(t, r, CmdCreateWindow, `[1,2]`)

	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "invalid payload")
}

func TestCommands_ControlsOnMissingWindowSucceed(t *testing.T) {
	host := portmocks.NewMockWindowHost(t)
	host.EXPECT().Window("window-gone").Return(nil, false)

	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{Controls: usecase.NewWindowControlsUseCase(host, host)}.Register(r))

	for _, cmd := range []string{CmdShow, CmdHide, CmdClose, CmdMinimize, CmdToggleMaximize, CmdDrag} {
		resp := dispatch(t, r, cmd, `{"label":"content-gone"}`)
		assert.True(t, resp.OK, cmd)
	}
}

func TestCommands_ExplicitTargetKind(t *testing.T) {
	host := portmocks.NewMockWindowHost(t)
	window := portmocks.NewMockNativeWindow(t)
	host.EXPECT().Window("main").Return(window, true)
	window.EXPECT().Hide().Return(nil)

	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{Controls: usecase.NewWindowControlsUseCase(host, host)}.Register(r))

	resp := dispatch(t, r, CmdHide, `{"label":"main","target":"window"}`)
	assert.True(t, resp.OK)
}

func TestCommands_NavigateAndCurrentURL(t *testing.T) {
	host := portmocks.NewMockWindowHost(t)
	surface := portmocks.NewMockNativeSurface(t)
	host.EXPECT().Surface("content-abc").Return(surface, true)
	surface.EXPECT().LoadURL("https://example.com/next").Return(nil)
	surface.EXPECT().URL().Return("https://example.com/next", nil)

	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{Controls: usecase.NewWindowControlsUseCase(host, host)}.Register(r))

	nav := dispatch(t, r, CmdNavigate, `{"label":"titlebar-abc","url":"https://example.com/next"}`)
	assert.True(t, nav.OK)

	current := dispatch(t, r, CmdGetCurrentURL, `{"label":"window-abc"}`)
	assert.Equal(t, Response{OK: true, Result: "https://example.com/next"}, current)
}

func TestCommands_CurrentURLNotFound(t *testing.T) {
	host := portmocks.NewMockWindowHost(t)
	host.EXPECT().Surface("content-gone").Return(nil, false)

	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{Controls: usecase.NewWindowControlsUseCase(host, host)}.Register(r))

	resp := dispatch(t, r, CmdGetCurrentURL, `{"label":"content-gone"}`)
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "surface not found")
}

func TestCommands_StartURLMonitorResolvesContentLabel(t *testing.T) {
	monitor := &fakeMonitor{}
	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{Monitor: monitor}.Register(r))

	resp := dispatch(t, r, CmdStartURLMonitor, `{"label":"window-abc"}`)

	assert.True(t, resp.OK)
	assert.Equal(t, []string{"content-abc"}, monitor.watched)
}

func TestCommands_SearchAndResolve(t *testing.T) {
	settings := usecase.StaticSettings(usecase.DefaultShellSettings())
	provider := portmocks.NewMockSuggestionProvider(t)
	provider.EXPECT().Suggest(mock.Anything, "gol").Return([]string{"golang"}, nil)

	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{
		Suggestions:  usecase.NewGetSearchSuggestionsUseCase(provider, settings),
		ResolveInput: usecase.NewResolveInputUseCase(settings),
	}.Register(r))

	suggestions := dispatch(t, r, CmdGetSearchSuggestions, `{"query":"gol"}`)
	assert.Equal(t, Response{OK: true, Result: []string{"golang"}}, suggestions)

	resolved := dispatch(t, r, CmdResolveInput, `{"input":"example.com"}`)
	assert.Equal(t, Response{OK: true, Result: "https://example.com"}, resolved)
}

func TestCommands_ListWindows(t *testing.T) {
	registry := usecase.NewWindowRegistry(0)
	require.NoError(t, registry.Add(usecase.WindowRecord{
		Group: entity.NewWindowGroup("abc"),
		URL:   "https://example.com",
	}))

	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{Registry: registry}.Register(r))

	resp := dispatch(t, r, CmdListWindows, ``)
	require.True(t, resp.OK)
	records, ok := resp.Result.([]usecase.WindowRecord)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "content-abc", records[0].ContentLabel)
}

func TestCommands_Bookmarks(t *testing.T) {
	repo := portmocks.NewMockBookmarkRepository(t)
	settings := usecase.DefaultShellSettings()
	settings.QuickLinksLimit = 1
	bookmarks := usecase.NewBookmarksUseCase(repo, nil, usecase.StaticSettings(settings))

	r := NewRouter(testContext(), nil)
	require.NoError(t, Commands{Bookmarks: bookmarks}.Register(r))
	assert.ElementsMatch(t, []string{
		CmdListBookmarks, CmdGetQuickLinks, CmdAddBookmark,
		CmdEditBookmark, CmdRemoveBookmark, CmdToggleStar,
	}, r.Types())

	stored := []entity.Bookmark{
		{ID: 1, Name: "Google", URL: "https://google.com", Starred: true},
		{ID: 2, Name: "Reddit", URL: "https://reddit.com"},
		{ID: 3, Name: "GitHub", URL: "https://github.com", Starred: true},
	}
	repo.EXPECT().List(mock.Anything).Return(stored, nil).Twice()

	resp := dispatch(t, r, CmdListBookmarks, ``)
	require.True(t, resp.OK)
	assert.Equal(t, stored, resp.Result)

	resp = dispatch(t, r, CmdGetQuickLinks, ``)
	require.True(t, resp.OK)
	assert.Equal(t, stored[:1], resp.Result)

	reddit := stored[1]
	repo.EXPECT().FindByID(mock.Anything, entity.BookmarkID(2)).Return(&reddit, nil).Once()
	repo.EXPECT().Save(mock.Anything, &reddit).Return(nil).Once()

	resp = dispatch(t, r, CmdToggleStar, `{"id":2}`)
	require.True(t, resp.OK)
	toggled, ok := resp.Result.(*entity.Bookmark)
	require.True(t, ok)
	assert.True(t, toggled.Starred)

	repo.EXPECT().FindByID(mock.Anything, entity.BookmarkID(42)).Return(nil, nil).Once()
	resp = dispatch(t, r, CmdRemoveBookmark, `{"id":42}`)
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "bookmark not found")

	resp = dispatch(t, r, CmdAddBookmark, `{"name":"x","url":"not a url"}`)
	assert.Contains(t, resp.Error, "invalid url")

	resp = dispatch(t, r, CmdEditBookmark, `{"id":"two"}`)
	assert.Contains(t, resp.Error, "invalid payload")
}
