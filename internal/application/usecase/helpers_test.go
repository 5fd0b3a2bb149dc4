package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// recordingNotifier collects notifications from any goroutine.
type recordingNotifier struct {
	mu  sync.Mutex
	got []entity.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification entity.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, notification)
}

func (n *recordingNotifier) all() []entity.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]entity.Notification, len(n.got))
	copy(out, n.got)
	return out
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.got)
}

var errTransientRead = errors.New("transient read failure")

// scriptedSurface returns a fixed address sequence, then repeats the last
// entry. An empty entry yields errTransientRead.
type scriptedSurface struct {
	mu     sync.Mutex
	label  string
	script []string
	reads  int
}

func (s *scriptedSurface) Label() string { return s.label }

func (s *scriptedSurface) URL() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := min(s.reads, len(s.script)-1)
	s.reads++
	if s.script[idx] == "" {
		return "", errTransientRead
	}
	return s.script[idx], nil
}

func (s *scriptedSurface) readCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *scriptedSurface) SetBounds(entity.SurfaceRect) error { return nil }
func (s *scriptedSurface) LoadURL(string) error { return nil }
func (s *scriptedSurface) GoBack() error { return nil }
func (s *scriptedSurface) GoForward() error { return nil }
func (s *scriptedSurface) Reload() error { return nil }

// surfaceTable is a concurrent SurfaceLookup.
type surfaceTable struct {
	mu       sync.RWMutex
	surfaces map[string]port.NativeSurface
}

func newSurfaceTable() *surfaceTable {
	return &surfaceTable{surfaces: make(map[string]port.NativeSurface)}
}

func (t *surfaceTable) put(s port.NativeSurface) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.surfaces[s.Label()] = s
}

func (t *surfaceTable) remove(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.surfaces, label)
}

func (t *surfaceTable) Surface(label string) (port.NativeSurface, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.surfaces[label]
	return s, ok
}

func urlsOf(ns []entity.Notification) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		if changed, ok := n.(entity.URLChanged); ok {
			out = append(out, changed.URL)
		}
	}
	return out
}
