package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 5 * time.Millisecond

func TestURLMonitor_PublishesOnlyOnChange(t *testing.T) {
	ctx := testContext()
	surfaces := newSurfaceTable()
	surface := &scriptedSurface{
		label:  "content-1",
		script: []string{"https://a.test/", "https://a.test/", "https://b.test/", "https://b.test/", "https://c.test/"},
	}
	surfaces.put(surface)
	notifier := &recordingNotifier{}

	uc := usecase.NewURLMonitorUseCase(surfaces, notifier, nil, testInterval)
	require.NoError(t, uc.Watch(ctx, "content-1"))
	t.Cleanup(func() {
		uc.StopAll()
		uc.Wait()
	})

	require.Eventually(t, func() bool { return surface.readCount() > 8 }, time.Second, testInterval)

	// The first observation is published, then one notification per change.
	got := urlsOf(notifier.all())
	require.Len(t, got, 3)
	assert.Equal(t, "https://a.test/", got[0])
	assert.Equal(t, []string{"https://b.test/", "https://c.test/"}, got[1:])

	for _, n := range notifier.all() {
		assert.Equal(t, "content-1", n.(entity.URLChanged).WindowLabel)
	}
}

func TestURLMonitor_TransientReadErrorIsNoChange(t *testing.T) {
	ctx := testContext()
	surfaces := newSurfaceTable()
	surface := &scriptedSurface{
		label:  "content-1",
		script: []string{"https://a.test/", "", "", "https://a.test/", "", "https://b.test/"},
	}
	surfaces.put(surface)
	notifier := &recordingNotifier{}

	uc := usecase.NewURLMonitorUseCase(surfaces, notifier, nil, testInterval)
	require.NoError(t, uc.Watch(ctx, "content-1"))
	t.Cleanup(func() {
		uc.StopAll()
		uc.Wait()
	})

	require.Eventually(t, func() bool { return surface.readCount() > 8 }, time.Second, testInterval)

	assert.Equal(t, []string{"https://a.test/", "https://b.test/"}, urlsOf(notifier.all()))
	assert.True(t, uc.IsWatching("content-1"))
}

func TestURLMonitor_EndsWhenSurfaceRemoved(t *testing.T) {
	ctx := testContext()
	surfaces := newSurfaceTable()
	surfaces.put(&scriptedSurface{label: "content-1", script: []string{"https://a.test/"}})
	notifier := &recordingNotifier{}

	uc := usecase.NewURLMonitorUseCase(surfaces, notifier, nil, testInterval)
	require.NoError(t, uc.Watch(ctx, "content-1"))

	require.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, testInterval)

	surfaces.remove("content-1")
	require.Eventually(t, func() bool { return !uc.IsWatching("content-1") }, time.Second, testInterval)

	// A new surface under the same label is not picked up by the ended monitor.
	surfaces.put(&scriptedSurface{label: "content-1", script: []string{"https://z.test/"}})
	assert.Never(t, func() bool { return notifier.count() > 1 }, 10*testInterval, testInterval)

	uc.Wait()
}

func TestURLMonitor_StopPreventsFurtherNotifications(t *testing.T) {
	ctx := testContext()
	surfaces := newSurfaceTable()
	surface := &scriptedSurface{label: "content-1", script: []string{"https://a.test/"}}
	surfaces.put(surface)
	notifier := &recordingNotifier{}

	uc := usecase.NewURLMonitorUseCase(surfaces, notifier, nil, testInterval)
	require.NoError(t, uc.Watch(ctx, "content-1"))
	require.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, testInterval)

	assert.True(t, uc.Stop("content-1"))
	assert.False(t, uc.Stop("content-1"))
	surfaces.put(&scriptedSurface{label: "content-1", script: []string{"https://b.test/"}})

	assert.Never(t, func() bool { return notifier.count() > 1 }, 10*testInterval, testInterval)
	uc.Wait()
}

func TestURLMonitor_WatchIsIdempotent(t *testing.T) {
	ctx := testContext()
	surfaces := newSurfaceTable()
	surfaces.put(&scriptedSurface{label: "content-1", script: []string{"https://a.test/"}})
	notifier := &recordingNotifier{}

	uc := usecase.NewURLMonitorUseCase(surfaces, notifier, nil, testInterval)
	require.NoError(t, uc.Watch(ctx, "content-1"))
	require.NoError(t, uc.Watch(ctx, "content-1"))
	t.Cleanup(func() {
		uc.StopAll()
		uc.Wait()
	})

	assert.Equal(t, []string{"content-1"}, uc.Active())
	assert.Never(t, func() bool { return notifier.count() > 1 }, 10*testInterval, testInterval)
}

func TestURLMonitor_UpdatesRegistry(t *testing.T) {
	ctx := testContext()
	registry := usecase.NewWindowRegistry(0)
	group := entity.NewWindowGroup("1")
	require.NoError(t, registry.Add(usecase.WindowRecord{Group: group, URL: "https://start.test/"}))

	surfaces := newSurfaceTable()
	surfaces.put(&scriptedSurface{label: group.ContentLabel(), script: []string{"https://moved.test/"}})

	uc := usecase.NewURLMonitorUseCase(surfaces, &recordingNotifier{}, registry, testInterval)
	require.NoError(t, uc.Watch(ctx, group.ContentLabel()))
	t.Cleanup(func() {
		uc.StopAll()
		uc.Wait()
	})

	require.Eventually(t, func() bool {
		rec, ok := registry.Lookup(group.WindowLabel())
		return ok && rec.URL == "https://moved.test/"
	}, time.Second, testInterval)
}

func TestURLMonitor_EmptyLabel(t *testing.T) {
	uc := usecase.NewURLMonitorUseCase(newSurfaceTable(), &recordingNotifier{}, nil, 0)

	err := uc.Watch(testContext(), "")
	require.ErrorIs(t, err, usecase.ErrSurfaceNotFound)
	assert.Equal(t, usecase.DefaultPollInterval, uc.Interval())
}


// loopNotifier delivers each notification on a single loop goroutine and
// waits for it, the way the GTK host marshals script evaluation.
type loopNotifier struct {
	tasks   chan func()
	entered chan struct{}
	once    sync.Once
	got     recordingNotifier
}

func newLoopNotifier() *loopNotifier {
	return &loopNotifier{tasks: make(chan func()), entered: make(chan struct{})}
}

func (n *loopNotifier) Notify(ctx context.Context, notification entity.Notification) {
	n.once.Do(func() { close(n.entered) })
	done := make(chan struct{})
	n.tasks <- func() {
		n.got.Notify(ctx, notification)
		close(done)
	}
	<-done
}

func TestURLMonitor_StopFromDeliveryLoopWhileNotifying(t *testing.T) {
	ctx := testContext()
	surfaces := newSurfaceTable()
	surfaces.put(&scriptedSurface{label: "content-1", script: []string{"https://callback.test/"}})
	notifier := newLoopNotifier()

	uc := usecase.NewURLMonitorUseCase(surfaces, notifier, nil, testInterval)
	require.NoError(t, uc.Watch(ctx, "content-1"))

	stopped := make(chan bool, 1)
	quit := make(chan struct{})
	go func() {
		// A window closes on the loop while the first notification waits for it.
		<-notifier.entered
		stopped <- uc.Stop("content-1")
		for {
			select {
			case task := <-notifier.tasks:
				task()
			case <-quit:
				return
			}
		}
	}()
	t.Cleanup(func() { close(quit) })

	select {
	case ok := <-stopped:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Stop blocked while a notification was waiting on the same loop")
	}

	require.Eventually(t, func() bool { return notifier.got.count() == 1 }, time.Second, testInterval)
	uc.Wait()
	assert.False(t, uc.IsWatching("content-1"))
	assert.Equal(t, 1, notifier.got.count())
}
