package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowRegistry_AddLookupRemove(t *testing.T) {
	r := usecase.NewWindowRegistry(0)
	require.NoError(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup("a"), URL: "https://a.test/"}))

	for _, label := range []string{"window-a", "titlebar-a", "content-a"} {
		rec, ok := r.Lookup(label)
		require.True(t, ok, label)
		assert.Equal(t, "window-a", rec.WindowLabel)
		assert.Equal(t, "content-a", rec.ContentLabel)
	}

	_, ok := r.Lookup("main")
	assert.False(t, ok)

	rec, ok := r.Remove("content-a")
	require.True(t, ok)
	assert.Equal(t, "https://a.test/", rec.URL)

	_, ok = r.Remove("content-a")
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

func TestWindowRegistry_RejectsDuplicate(t *testing.T) {
	r := usecase.NewWindowRegistry(0)
	require.NoError(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup("a")}))
	assert.Error(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup("a")}))
}

func TestWindowRegistry_LimitReleasesOnRemove(t *testing.T) {
	r := usecase.NewWindowRegistry(2)
	assert.Equal(t, 2, r.Limit())

	require.NoError(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup("a")}))
	require.NoError(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup("b")}))
	require.ErrorIs(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup("c")}), usecase.ErrWindowLimit)

	_, ok := r.Remove("window-a")
	require.True(t, ok)
	require.NoError(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup("c")}))
}

func TestWindowRegistry_ListOldestFirst(t *testing.T) {
	r := usecase.NewWindowRegistry(0)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup("late"), CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup("early"), CreatedAt: base}))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "window-early", list[0].WindowLabel)
	assert.Equal(t, "window-late", list[1].WindowLabel)
}

func TestWindowRegistry_ConcurrentAddRemove(t *testing.T) {
	r := usecase.NewWindowRegistry(8)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			group := entity.NewWindowGroup(entity.LogicalWindowID(uuid.NewString()))
			if err := r.Add(usecase.WindowRecord{Group: group}); err == nil {
				r.Remove(group.WindowLabel())
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, r.Len())
	for i := 0; i < 8; i++ {
		require.NoError(t, r.Add(usecase.WindowRecord{Group: entity.NewWindowGroup(entity.LogicalWindowID(uuid.NewString()))}))
	}
}
