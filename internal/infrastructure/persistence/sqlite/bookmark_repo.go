package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/logging"
)

const bookmarkColumns = `id, name, url, starred, position, created_at, updated_at`

type bookmarkRepo struct {
	db *sql.DB
}

// NewBookmarkRepository creates a SQLite-backed bookmark repository.
func NewBookmarkRepository(db *sql.DB) port.BookmarkRepository {
	return &bookmarkRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *bookmarkRepo) List(ctx context.Context) ([]entity.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bookmarkColumns+` FROM bookmarks ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []entity.Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *bookmarkRepo) FindByID(ctx context.Context, id entity.BookmarkID) (*entity.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = ?`, int64(id))
	return findOne(row)
}

func (r *bookmarkRepo) FindByURL(ctx context.Context, url string) (*entity.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookmarkColumns+` FROM bookmarks WHERE url = ?`, url)
	return findOne(row)
}

func (r *bookmarkRepo) Save(ctx context.Context, b *entity.Bookmark) error {
	if b.IsSaved() {
		return r.update(ctx, b)
	}

	logging.FromContext(ctx).Debug().Str("url", b.URL).Msg("saving bookmark")

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	var id int64
	var position int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO bookmarks (name, url, starred, position, created_at, updated_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM bookmarks), ?, ?)
		RETURNING id, position`,
		b.Name, b.URL, b.Starred, b.CreatedAt.UnixMilli(), b.UpdatedAt.UnixMilli(),
	).Scan(&id, &position)
	if err != nil {
		return err
	}
	b.ID = entity.BookmarkID(id)
	b.Position = position
	return nil
}

func (r *bookmarkRepo) update(ctx context.Context, b *entity.Bookmark) error {
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = time.Now()
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookmarks
		SET name = ?, url = ?, starred = ?, position = ?, updated_at = ?
		WHERE id = ?`,
		b.Name, b.URL, b.Starred, b.Position, b.UpdatedAt.UnixMilli(), int64(b.ID),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("bookmark %d: %w", b.ID, sql.ErrNoRows)
	}
	return nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, id entity.BookmarkID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, int64(id))
	return err
}

func findOne(row rowScanner) (*entity.Bookmark, error) {
	b, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

func scanBookmark(row rowScanner) (*entity.Bookmark, error) {
	var (
		b                entity.Bookmark
		id               int64
		created, updated int64
	)
	if err := row.Scan(&id, &b.Name, &b.URL, &b.Starred, &b.Position, &created, &updated); err != nil {
		return nil, err
	}
	b.ID = entity.BookmarkID(id)
	b.CreatedAt = time.UnixMilli(created)
	b.UpdatedAt = time.UnixMilli(updated)
	return &b, nil
}
