package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/logging"
)

type urlWatcher struct {
	mu      sync.Mutex
	stopped bool
	cancel  context.CancelFunc
}

// URLMonitorUseCase detects navigation in content surfaces by polling
// their address and publishes url-changed notifications.
// Each watched label gets one goroutine which ends when the surface can
// no longer be resolved or when Stop is called.
type URLMonitorUseCase struct {
	surfaces port.SurfaceLookup
	notifier port.Notifier
	registry *WindowRegistry
	interval time.Duration

	mu       sync.Mutex
	watchers map[string]*urlWatcher
	wg       sync.WaitGroup
}

// NewURLMonitorUseCase creates a new URL monitor.
// registry may be nil; when set it receives the last observed address.
func NewURLMonitorUseCase(
	surfaces port.SurfaceLookup,
	notifier port.Notifier,
	registry *WindowRegistry,
	interval time.Duration,
) *URLMonitorUseCase {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &URLMonitorUseCase{
		surfaces: surfaces,
		notifier: notifier,
		registry: registry,
		interval: interval,
		watchers: make(map[string]*urlWatcher),
	}
}

// Interval returns the polling interval.
func (uc *URLMonitorUseCase) Interval() time.Duration {
	return uc.interval
}

// Watch starts monitoring a content surface and returns immediately.
// Watching an already watched label is a no-op.
func (uc *URLMonitorUseCase) Watch(ctx context.Context, contentLabel string) error {
	if contentLabel == "" {
		return fmt.Errorf("%w: empty label", ErrSurfaceNotFound)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.watchers[contentLabel]; ok {
		return nil
	}

	// The watcher outlives the request that started it.
	wctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	wctx = logging.WithComponent(logging.WithWindowLabel(wctx, contentLabel), "url-monitor")

	w := &urlWatcher{cancel: cancel}
	uc.watchers[contentLabel] = w

	uc.wg.Add(1)
	go uc.run(wctx, contentLabel, w)

	logging.FromContext(ctx).Info().
		Str("label", contentLabel).
		Dur("interval", uc.interval).
		Msg("url monitor started")
	return nil
}

// Stop ends monitoring of label. No notification for label starts once
// Stop returns; one already being delivered may still complete. Stop never
// waits on the monitor goroutine, so it is safe to call from the thread
// that delivers notifications.
func (uc *URLMonitorUseCase) Stop(label string) bool {
	uc.mu.Lock()
	w, ok := uc.watchers[label]
	if ok {
		delete(uc.watchers, label)
	}
	uc.mu.Unlock()

	if !ok {
		return false
	}
	w.stop()
	return true
}

// StopAll stops every monitor.
func (uc *URLMonitorUseCase) StopAll() {
	uc.mu.Lock()
	watchers := uc.watchers
	uc.watchers = make(map[string]*urlWatcher)
	uc.mu.Unlock()

	for _, w := range watchers {
		w.stop()
	}
}

// Wait blocks until every monitor goroutine has exited.
func (uc *URLMonitorUseCase) Wait() {
	uc.wg.Wait()
}

// IsWatching reports whether label has a running monitor.
func (uc *URLMonitorUseCase) IsWatching(label string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.watchers[label]
	return ok
}

// Active returns the watched labels, sorted.
func (uc *URLMonitorUseCase) Active() []string {
	uc.mu.Lock()
	out := make([]string, 0, len(uc.watchers))
	for label := range uc.watchers {
		out = append(out, label)
	}
	uc.mu.Unlock()

	sort.Strings(out)
	return out
}

func (w *urlWatcher) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

func (w *urlWatcher) stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
	w.cancel()
}

func (uc *URLMonitorUseCase) run(ctx context.Context, label string, w *urlWatcher) {
	defer uc.wg.Done()
	defer uc.forget(label, w)

	log := logging.FromContext(ctx)

	ticker := time.NewTicker(uc.interval)
	defer ticker.Stop()

	var last string
	for {
		if !uc.poll(ctx, label, w, &last) {
			log.Debug().Msg("url monitor stopped")
			return
		}
		select {
		case <-ctx.Done():
			log.Debug().Msg("url monitor cancelled")
			return
		case <-ticker.C:
		}
	}
}

// poll samples the surface once. It returns false when the monitor must end.
func (uc *URLMonitorUseCase) poll(ctx context.Context, label string, w *urlWatcher, last *string) bool {
	if ctx.Err() != nil {
		return false
	}

	surface, ok := uc.surfaces.Surface(label)
	if !ok {
		return false
	}

	current, err := surface.URL()
	if err != nil {
		logging.FromContext(ctx).Trace().Err(err).Msg("url read failed")
		return true
	}
	if current == *last {
		return true
	}

	if w.isStopped() {
		return false
	}

	*last = current
	if uc.registry != nil {
		uc.registry.UpdateURL(label, current)
	}
	// Notify may wait on the thread that calls Stop, so no lock is held.
	uc.notifier.Notify(ctx, entity.URLChanged{URL: current, WindowLabel: label})
	return true
}

func (uc *URLMonitorUseCase) forget(label string, w *urlWatcher) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.watchers[label] == w {
		delete(uc.watchers, label)
	}
}
