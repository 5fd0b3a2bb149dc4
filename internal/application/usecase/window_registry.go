package usecase

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bnema/meikai/internal/domain/entity"
	"golang.org/x/sync/semaphore"
)

// WindowRecord is one live window group in the registry.
type WindowRecord struct {
	Group        entity.WindowGroup `json:"-"`
	WindowLabel  string             `json:"windowLabel"`
	ContentLabel string             `json:"contentLabel"`
	URL          string             `json:"url"`
	ParentLabel  string             `json:"parentLabel,omitempty"`
	Depth        int                `json:"depth"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// WindowRegistry is the arena of live window groups keyed by logical ID.
// Labels are derived from the ID on demand.
type WindowRegistry struct {
	mu      sync.RWMutex
	records map[entity.LogicalWindowID]WindowRecord
	slots   *semaphore.Weighted
	limit   int64
}

// NewWindowRegistry creates an empty registry holding at most limit
// groups. A limit <= 0 means unlimited.
func NewWindowRegistry(limit int) *WindowRegistry {
	r := &WindowRegistry{
		records: make(map[entity.LogicalWindowID]WindowRecord),
	}
	if limit > 0 {
		r.limit = int64(limit)
		r.slots = semaphore.NewWeighted(r.limit)
	}
	return r
}

// Limit returns the configured cap, 0 when unlimited.
func (r *WindowRegistry) Limit() int {
	return int(r.limit)
}

// Add registers a group. It fails with ErrWindowLimit when the registry
// is full and never blocks.
func (r *WindowRegistry) Add(rec WindowRecord) error {
	id := rec.Group.ID

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; exists {
		return fmt.Errorf("window group %s already registered", id)
	}
	if r.slots != nil && !r.slots.TryAcquire(1) {
		return fmt.Errorf("%w (%d)", ErrWindowLimit, r.limit)
	}

	rec.WindowLabel = rec.Group.WindowLabel()
	rec.ContentLabel = rec.Group.ContentLabel()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.records[id] = rec
	return nil
}

// Remove drops the group owning label. Any member label is accepted.
func (r *WindowRegistry) Remove(label string) (WindowRecord, bool) {
	group, ok := entity.ParseLabel(label).Group()
	if !ok {
		return WindowRecord{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[group.ID]
	if !ok {
		return WindowRecord{}, false
	}
	delete(r.records, group.ID)
	if r.slots != nil {
		r.slots.Release(1)
	}
	return rec, true
}

// Lookup returns the group owning label. Any member label is accepted.
func (r *WindowRegistry) Lookup(label string) (WindowRecord, bool) {
	group, ok := entity.ParseLabel(label).Group()
	if !ok {
		return WindowRecord{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[group.ID]
	return rec, ok
}

// UpdateURL records the last known address of a group.
func (r *WindowRegistry) UpdateURL(label, url string) {
	group, ok := entity.ParseLabel(label).Group()
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.records[group.ID]; ok {
		rec.URL = url
		r.records[group.ID] = rec
	}
}

// Len returns the number of live groups.
func (r *WindowRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// List returns a snapshot of live groups, oldest first.
func (r *WindowRegistry) List() []WindowRecord {
	r.mu.RLock()
	out := make([]WindowRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Group.ID < out[j].Group.ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
