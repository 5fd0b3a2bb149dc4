package entity

// Notification names published to UI surfaces.
const (
	NotificationWindowClosed     = "window-closed"
	NotificationNewWindowCreated = "new-window-created"
	NotificationURLChanged       = "url-changed"
	NotificationBookmarksChanged = "bookmarks-changed"
)

// Notification is a fire-and-forget event published by the shell core.
type Notification interface {
	// Name returns the wire name of the notification.
	Name() string
}

// WindowClosed is published once a window group has been destroyed.
// WindowLabel carries the content label of the destroyed group.
type WindowClosed struct {
	WindowLabel string `json:"windowLabel"`
}

// Name implements Notification.
func (WindowClosed) Name() string { return NotificationWindowClosed }

// NewWindowCreated is published when an outgoing navigation was
// intercepted and opened as a new window group.
type NewWindowCreated struct {
	WindowLabel string `json:"windowLabel"`
	URL         string `json:"url"`
}

// Name implements Notification.
func (NewWindowCreated) Name() string { return NotificationNewWindowCreated }

// URLChanged is published by the URL monitor when a content surface
// navigated.
type URLChanged struct {
	URL         string `json:"url"`
	WindowLabel string `json:"windowLabel"`
}

// Name implements Notification.
func (URLChanged) Name() string { return NotificationURLChanged }

// Bookmark change actions.
const (
	BookmarkAdded   = "added"
	BookmarkUpdated = "updated"
	BookmarkRemoved = "removed"
)

// BookmarksChanged is published after the bookmark list was modified so
// launcher pages reload their quick links.
type BookmarksChanged struct {
	Action string     `json:"action"`
	ID     BookmarkID `json:"id"`
}

// Name implements Notification.
func (BookmarksChanged) Name() string { return NotificationBookmarksChanged }
