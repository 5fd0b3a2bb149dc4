package port

import (
	"context"

	"github.com/bnema/meikai/internal/domain/entity"
)

// BookmarkRepository persists bookmarks. Find methods return nil, nil when
// nothing matches.
type BookmarkRepository interface {
	// List returns every bookmark ordered by position.
	List(ctx context.Context) ([]entity.Bookmark, error)
	FindByID(ctx context.Context, id entity.BookmarkID) (*entity.Bookmark, error)
	FindByURL(ctx context.Context, url string) (*entity.Bookmark, error)
	// Save inserts an unsaved bookmark at the end of the list and sets its
	// ID and Position, or updates a saved one.
	Save(ctx context.Context, b *entity.Bookmark) error
	Delete(ctx context.Context, id entity.BookmarkID) error
}
