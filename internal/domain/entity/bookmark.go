package entity

import "time"

// BookmarkID uniquely identifies a stored bookmark.
type BookmarkID int64

// Bookmark is a saved address. Starred bookmarks are the launcher's quick
// links.
type Bookmark struct {
	ID        BookmarkID `json:"id"`
	Name      string     `json:"name"`
	URL       string     `json:"url"`
	Starred   bool       `json:"starred"`
	Position  int        `json:"position"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewBookmark creates an unsaved bookmark.
func NewBookmark(name, url string, starred bool) *Bookmark {
	now := time.Now()
	return &Bookmark{
		Name:      name,
		URL:       url,
		Starred:   starred,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsSaved reports whether the bookmark has been persisted.
func (b *Bookmark) IsSaved() bool {
	return b.ID > 0
}

// QuickLinks returns the starred bookmarks in order, at most limit of
// them. A limit of zero or less means no cap.
func QuickLinks(bookmarks []Bookmark, limit int) []Bookmark {
	out := make([]Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		if !b.Starred {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, b)
	}
	return out
}
