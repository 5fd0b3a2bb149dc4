package gtkhost

import (
	"sort"
	"sync"

	"github.com/bnema/meikai/internal/application/port"
)

type surfaceEntry struct {
	surface     port.NativeSurface
	kind        port.SurfaceKind
	windowLabel string
}

// registry maps labels to live toolkit objects. Native callbacks carry a
// numeric handle instead of a Go pointer, resolved here.
type registry struct {
	mu       sync.RWMutex
	windows  map[string]port.NativeWindow
	surfaces map[string]surfaceEntry
	handles  map[uint64]string
	next     uint64
}

func newRegistry() *registry {
	return &registry{
		windows:  make(map[string]port.NativeWindow),
		surfaces: make(map[string]surfaceEntry),
		handles:  make(map[uint64]string),
	}
}

// handle allocates a native callback handle for label.
func (r *registry) handle(label string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.handles[r.next] = label
	return r.next
}

func (r *registry) labelOf(handle uint64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	label, ok := r.handles[handle]
	return label, ok
}

func (r *registry) addWindow(w port.NativeWindow) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.windows[w.Label()]; exists {
		return false
	}
	r.windows[w.Label()] = w
	return true
}

func (r *registry) addSurface(s port.NativeSurface, kind port.SurfaceKind, windowLabel string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.surfaces[s.Label()]; exists {
		return false
	}
	r.surfaces[s.Label()] = surfaceEntry{surface: s, kind: kind, windowLabel: windowLabel}
	return true
}

func (r *registry) removeSurface(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, label)
	r.dropHandlesLocked(label)
}

// removeWindow drops a window with every surface attached to it and
// returns the removed surface labels.
func (r *registry) removeWindow(label string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.windows, label)
	r.dropHandlesLocked(label)

	var removed []string
	for surfaceLabel, e := range r.surfaces {
		if e.windowLabel != label {
			continue
		}
		delete(r.surfaces, surfaceLabel)
		r.dropHandlesLocked(surfaceLabel)
		removed = append(removed, surfaceLabel)
	}
	sort.Strings(removed)
	return removed
}

func (r *registry) dropHandlesLocked(label string) {
	for h, l := range r.handles {
		if l == label {
			delete(r.handles, h)
		}
	}
}

// Window implements port.WindowLookup.
func (r *registry) Window(label string) (port.NativeWindow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[label]
	return w, ok
}

// Surface implements port.SurfaceLookup.
func (r *registry) Surface(label string) (port.NativeSurface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.surfaces[label]
	return e.surface, ok
}

// uiSurfaces returns the labels of title-bar and panel surfaces, sorted.
func (r *registry) uiSurfaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	labels := make([]string, 0, len(r.surfaces))
	for label, e := range r.surfaces {
		if e.kind == port.SurfaceContent {
			continue
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (r *registry) windowCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.windows)
}
