package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/domain/entity"
)

// Command names accepted from pages.
const (
	CmdCreateWindow         = "createWindow"
	CmdNavigate             = "navigate"
	CmdGoBack               = "goBack"
	CmdGoForward            = "goForward"
	CmdReload               = "reload"
	CmdShow                 = "show"
	CmdHide                 = "hide"
	CmdClose                = "close"
	CmdMinimize             = "minimize"
	CmdToggleMaximize       = "toggleMaximize"
	CmdDrag                 = "drag"
	CmdGetCurrentURL        = "getCurrentUrl"
	CmdStartURLMonitor      = "startUrlMonitor"
	CmdGetSearchSuggestions = "getSearchSuggestions"
	CmdResolveInput         = "resolveInput"
	CmdListWindows          = "listWindows"
	CmdOpenLauncher         = "openLauncher"
	CmdListBookmarks        = "listBookmarks"
	CmdGetQuickLinks        = "getQuickLinks"
	CmdAddBookmark          = "addBookmark"
	CmdEditBookmark         = "editBookmark"
	CmdRemoveBookmark       = "removeBookmark"
	CmdToggleStar           = "toggleStar"
)

// Commands holds the use cases behind the command table.
// Nil members leave their commands unregistered.
type Commands struct {
	CreateWindow usecase.WindowCreator
	Controls     *usecase.WindowControlsUseCase
	Monitor      usecase.MonitorStarter
	Suggestions  *usecase.GetSearchSuggestionsUseCase
	ResolveInput *usecase.ResolveInputUseCase
	Registry     *usecase.WindowRegistry
	Launcher     *usecase.OpenLauncherUseCase
	Bookmarks    *usecase.BookmarksUseCase
}

type urlPayload struct {
	URL string `json:"url"`
}

type targetPayload struct {
	Label string `json:"label"`
	// Target is "window", "titlebar" or "content". Empty infers the kind
	// from the label.
	Target string `json:"target,omitempty"`
	URL    string `json:"url,omitempty"`
}

func (p targetPayload) target() usecase.Target {
	return usecase.Target{Label: p.Label, Kind: entity.ParseTargetKind(p.Target)}
}

type queryPayload struct {
	Query string `json:"query"`
}

type inputPayload struct {
	Input string `json:"input"`
}

type bookmarkIDPayload struct {
	ID entity.BookmarkID `json:"id"`
}

// Register installs every available command on r.
func (c Commands) Register(r *Router) error {
	handlers := make(map[string]Handler)

	if c.CreateWindow != nil {
		handlers[CmdCreateWindow] = HandlerFunc(c.createWindow)
	}

	if c.Controls != nil {
		targetCmds := map[string]func(context.Context, usecase.Target) error{
			CmdGoBack:         c.Controls.GoBack,
			CmdGoForward:      c.Controls.GoForward,
			CmdReload:         c.Controls.Reload,
			CmdShow:           c.Controls.Show,
			CmdHide:           c.Controls.Hide,
			CmdClose:          c.Controls.Close,
			CmdMinimize:       c.Controls.Minimize,
			CmdToggleMaximize: c.Controls.ToggleMaximize,
			CmdDrag:           c.Controls.Drag,
		}
		for name, fn := range targetCmds {
			handlers[name] = targetCommand(fn)
		}
		handlers[CmdNavigate] = HandlerFunc(c.navigate)
		handlers[CmdGetCurrentURL] = HandlerFunc(c.currentURL)
	}

	if c.Monitor != nil {
		handlers[CmdStartURLMonitor] = HandlerFunc(c.startURLMonitor)
	}
	if c.Suggestions != nil {
		handlers[CmdGetSearchSuggestions] = HandlerFunc(c.searchSuggestions)
	}
	if c.ResolveInput != nil {
		handlers[CmdResolveInput] = HandlerFunc(c.resolveInput)
	}
	if c.Registry != nil {
		handlers[CmdListWindows] = HandlerFunc(c.listWindows)
	}
	if c.Launcher != nil {
		handlers[CmdOpenLauncher] = HandlerFunc(c.openLauncher)
	}
	if c.Bookmarks != nil {
		handlers[CmdListBookmarks] = HandlerFunc(c.listBookmarks)
		handlers[CmdGetQuickLinks] = HandlerFunc(c.quickLinks)
		handlers[CmdAddBookmark] = HandlerFunc(c.addBookmark)
		handlers[CmdEditBookmark] = HandlerFunc(c.editBookmark)
		handlers[CmdRemoveBookmark] = HandlerFunc(c.removeBookmark)
		handlers[CmdToggleStar] = HandlerFunc(c.toggleStar)
	}

	for name, h := range handlers {
		if err := r.RegisterHandler(name, h); err != nil {
			return fmt.Errorf("failed to register %s: %w", name, err)
		}
	}
	return nil
}

func decode[T any](payload json.RawMessage) (T, error) {
	var v T
	if len(payload) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, fmt.Errorf("invalid payload: %w", err)
	}
	return v, nil
}

func targetCommand(fn func(context.Context, usecase.Target) error) HandlerFunc {
	return func(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
		p, err := decode[targetPayload](payload)
		if err != nil {
			return nil, err
		}
		return nil, fn(ctx, p.target())
	}
}

func (c Commands) createWindow(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	p, err := decode[urlPayload](payload)
	if err != nil {
		return nil, err
	}
	out, err := c.CreateWindow.Execute(ctx, usecase.CreateWindowInput{URL: p.URL})
	if err != nil {
		return nil, err
	}
	return out.ContentLabel, nil
}

func (c Commands) navigate(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	p, err := decode[targetPayload](payload)
	if err != nil {
		return nil, err
	}
	return nil, c.Controls.Navigate(ctx, p.target(), p.URL)
}

func (c Commands) currentURL(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	p, err := decode[targetPayload](payload)
	if err != nil {
		return nil, err
	}
	return c.Controls.CurrentURL(ctx, p.target())
}

func (c Commands) startURLMonitor(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	p, err := decode[targetPayload](payload)
	if err != nil {
		return nil, err
	}
	return nil, c.Monitor.Watch(ctx, p.target().ContentLabel())
}

func (c Commands) searchSuggestions(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	p, err := decode[queryPayload](payload)
	if err != nil {
		return nil, err
	}
	return c.Suggestions.Execute(ctx, p.Query)
}

func (c Commands) resolveInput(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	p, err := decode[inputPayload](payload)
	if err != nil {
		return nil, err
	}
	return c.ResolveInput.Execute(ctx, p.Input)
}

func (c Commands) listWindows(context.Context, string, json.RawMessage) (any, error) {
	return c.Registry.List(), nil
}

func (c Commands) openLauncher(ctx context.Context, _ string, _ json.RawMessage) (any, error) {
	return nil, c.Launcher.Execute(ctx)
}

func (c Commands) listBookmarks(ctx context.Context, _ string, _ json.RawMessage) (any, error) {
	return c.Bookmarks.List(ctx)
}

func (c Commands) quickLinks(ctx context.Context, _ string, _ json.RawMessage) (any, error) {
	return c.Bookmarks.QuickLinks(ctx)
}

func (c Commands) addBookmark(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	in, err := decode[usecase.AddBookmarkInput](payload)
	if err != nil {
		return nil, err
	}
	return c.Bookmarks.Add(ctx, in)
}

func (c Commands) editBookmark(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	in, err := decode[usecase.EditBookmarkInput](payload)
	if err != nil {
		return nil, err
	}
	return c.Bookmarks.Edit(ctx, in)
}

func (c Commands) removeBookmark(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	p, err := decode[bookmarkIDPayload](payload)
	if err != nil {
		return nil, err
	}
	return nil, c.Bookmarks.Remove(ctx, p.ID)
}

func (c Commands) toggleStar(ctx context.Context, _ string, payload json.RawMessage) (any, error) {
	p, err := decode[bookmarkIDPayload](payload)
	if err != nil {
		return nil, err
	}
	return c.Bookmarks.ToggleStar(ctx, p.ID)
}
