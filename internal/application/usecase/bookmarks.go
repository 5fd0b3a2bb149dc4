package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/domain/url"
	"github.com/bnema/meikai/internal/logging"
)

// AddBookmarkInput describes a bookmark to create. An empty Name falls
// back to the address's domain.
type AddBookmarkInput struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Starred bool   `json:"starred"`
}

// EditBookmarkInput renames or re-targets a bookmark.
type EditBookmarkInput struct {
	ID   entity.BookmarkID `json:"id"`
	Name string            `json:"name"`
	URL  string            `json:"url"`
}

// BookmarksUseCase manages saved addresses and the launcher's quick links.
// Every change is published as bookmarks-changed.
type BookmarksUseCase struct {
	repo     port.BookmarkRepository
	notifier port.Notifier
	settings SettingsFunc
}

// NewBookmarksUseCase creates a new bookmarks use case.
func NewBookmarksUseCase(repo port.BookmarkRepository, notifier port.Notifier, settings SettingsFunc) *BookmarksUseCase {
	return &BookmarksUseCase{repo: repo, notifier: notifier, settings: settings}
}

// List returns every bookmark in display order.
func (uc *BookmarksUseCase) List(ctx context.Context) ([]entity.Bookmark, error) {
	bookmarks, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []entity.Bookmark{}
	}
	return bookmarks, nil
}

// QuickLinks returns the starred bookmarks, capped by the configured limit.
func (uc *BookmarksUseCase) QuickLinks(ctx context.Context) ([]entity.Bookmark, error) {
	bookmarks, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	limit := uc.settings.get().QuickLinksLimit
	if limit <= 0 {
		limit = DefaultQuickLinksLimit
	}
	return entity.QuickLinks(bookmarks, limit), nil
}

// Add stores a new bookmark at the end of the list.
func (uc *BookmarksUseCase) Add(ctx context.Context, in AddBookmarkInput) (*entity.Bookmark, error) {
	address, err := bookmarkURL(in.URL)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureUnused(ctx, address, 0); err != nil {
		return nil, err
	}

	b := entity.NewBookmark(bookmarkName(in.Name, address), address, in.Starred)
	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}

	logging.FromContext(ctx).Info().
		Int64("id", int64(b.ID)).
		Str("url", b.URL).
		Bool("starred", b.Starred).
		Msg("bookmark added")
	uc.publish(ctx, entity.BookmarkAdded, b.ID)
	return b, nil
}

// Edit changes the name and address of a bookmark.
func (uc *BookmarksUseCase) Edit(ctx context.Context, in EditBookmarkInput) (*entity.Bookmark, error) {
	b, err := uc.find(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	address, err := bookmarkURL(in.URL)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureUnused(ctx, address, b.ID); err != nil {
		return nil, err
	}

	b.Name = bookmarkName(in.Name, address)
	b.URL = address
	b.UpdatedAt = time.Now()
	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}

	uc.publish(ctx, entity.BookmarkUpdated, b.ID)
	return b, nil
}

// ToggleStar flips whether the bookmark is a quick link.
func (uc *BookmarksUseCase) ToggleStar(ctx context.Context, id entity.BookmarkID) (*entity.Bookmark, error) {
	b, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Starred = !b.Starred
	b.UpdatedAt = time.Now()
	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}

	uc.publish(ctx, entity.BookmarkUpdated, b.ID)
	return b, nil
}

// Remove deletes a bookmark.
func (uc *BookmarksUseCase) Remove(ctx context.Context, id entity.BookmarkID) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	logging.FromContext(ctx).Info().Int64("id", int64(id)).Msg("bookmark removed")
	uc.publish(ctx, entity.BookmarkRemoved, id)
	return nil
}

func (uc *BookmarksUseCase) find(ctx context.Context, id entity.BookmarkID) (*entity.Bookmark, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmark %d: %w", id, err)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %d", ErrBookmarkNotFound, id)
	}
	return b, nil
}

// ensureUnused fails when a bookmark other than self already holds address.
func (uc *BookmarksUseCase) ensureUnused(ctx context.Context, address string, self entity.BookmarkID) error {
	existing, err := uc.repo.FindByURL(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to look up bookmark: %w", err)
	}
	if existing != nil && existing.ID != self {
		return fmt.Errorf("%w: %s", ErrBookmarkExists, address)
	}
	return nil
}

func (uc *BookmarksUseCase) publish(ctx context.Context, action string, id entity.BookmarkID) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Notify(ctx, entity.BookmarksChanged{Action: action, ID: id})
}

// bookmarkURL adds https:// to bare hosts and rejects what a window could
// not load.
func bookmarkURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty url", ErrInvalidURL)
	}
	address := url.Normalize(raw)
	if _, err := url.ParseWindowURL(address); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	return address, nil
}

func bookmarkName(name, address string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	if domain := url.ExtractDomain(address); domain != "" {
		return domain
	}
	return address
}
