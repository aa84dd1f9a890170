package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/clock"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/metrics"
	"github.com/osse101/ArcFarmia_Go/internal/snapshot"
	"github.com/osse101/ArcFarmia_Go/mocks"
)

const (
	testSaveKey  = "arcfarmia_local_save_v1"
	testDebounce = 20 * time.Millisecond
)

var t0 = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

type memStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	saves int
	fail  error
}

func newMemStore() *memStore { return &memStore{data: make(map[string][]byte)} }

func (m *memStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, domain.ErrSaveNotFound
	}
	return raw, nil
}

func (m *memStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.data[key] = append([]byte(nil), data...)
	m.saves++
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Ping(context.Context) error { return nil }
func (m *memStore) Close() error               { return nil }

func (m *memStore) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *memStore) setFail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

func newAutosaveFixture(t *testing.T) (*AutosaveWorker, farm.Service, *memStore) {
	t.Helper()
	bus := event.NewMemoryBus()
	f := farm.NewService(catalog.Default(), clock.NewSimulatedClock(t0), bus)
	store := newMemStore()
	w := NewAutosaveWorker(f, store, testSaveKey, testDebounce)
	w.Register(context.Background(), bus)
	t.Cleanup(func() { _ = w.Shutdown(context.Background()) })
	return w, f, store
}

func TestAutosave_DebouncesBursts(t *testing.T) {
	ctx := context.Background()
	_, f, store := newAutosaveFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.Plant(ctx, i, domain.CropWheat)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool { return store.saveCount() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * testDebounce)
	assert.Equal(t, 1, store.saveCount(), "a burst of changes is written once")

	raw, err := store.Load(ctx, testSaveKey)
	require.NoError(t, err)
	patch, warnings, err := snapshot.Decode(raw)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 1, patch.Seeds[domain.CropWheat])
}

func TestAutosave_LoadOnStart(t *testing.T) {
	ctx := context.Background()
	w, f, store := newAutosaveFixture(t)

	saved := f.Snapshot()
	saved.ArcCoins = 999
	saved.Seeds[domain.CropCorn] = 42
	raw, err := snapshot.Encode(saved)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testSaveKey, raw))

	assert.True(t, w.LoadOnStart(ctx))
	assert.Equal(t, int64(999), f.Progression().ArcCoins)
	assert.Equal(t, 42, f.Snapshot().Seeds[domain.CropCorn])

	time.Sleep(3 * testDebounce)
	assert.Equal(t, 1, store.saveCount(), "restoring does not write the same snapshot back")
}

func TestAutosave_LoadOnStartKeepsDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		w, f, _ := newAutosaveFixture(t)
		assert.False(t, w.LoadOnStart(ctx))
		assert.Equal(t, domain.DefaultProgression(), f.Progression())
	})

	t.Run("corrupt", func(t *testing.T) {
		w, f, store := newAutosaveFixture(t)
		require.NoError(t, store.Save(ctx, testSaveKey, []byte(`not json`)))
		assert.False(t, w.LoadOnStart(ctx))
		assert.Equal(t, domain.DefaultProgression(), f.Progression())
	})

	t.Run("store error", func(t *testing.T) {
		f := farm.NewService(catalog.Default(), clock.NewSimulatedClock(t0), event.NewMemoryBus())
		store := mocks.NewMockStore(t)
		store.On("Load", mock.Anything, testSaveKey).Return(nil, errors.New("disk on fire")).Once()

		w := NewAutosaveWorker(f, store, testSaveKey, testDebounce)
		assert.False(t, w.LoadOnStart(ctx))
		assert.Equal(t, domain.DefaultProgression(), f.Progression())
	})
}

func TestAutosave_SuspendAndResume(t *testing.T) {
	ctx := context.Background()
	w, f, store := newAutosaveFixture(t)

	w.Suspend(ctx)
	assert.True(t, w.Suspended())
	assert.Equal(t, 1, store.saveCount(), "suspend writes the unsaved state first")

	_, err := f.Reset(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Flush(ctx))

	time.Sleep(3 * testDebounce)
	assert.Equal(t, 1, store.saveCount(), "nothing is written while suspended")

	w.Resume(ctx)
	_, err = f.Plant(ctx, 0, domain.CropWheat)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return store.saveCount() == 2 }, time.Second, 5*time.Millisecond)
}

func TestAutosave_SuspendKeepsProgressMadeBeforeReset(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	f := farm.NewService(catalog.Default(), clock.NewSimulatedClock(t0), bus)
	store := newMemStore()
	w := NewAutosaveWorker(f, store, testSaveKey, 250*time.Millisecond)
	w.Register(ctx, bus)
	t.Cleanup(func() { _ = w.Shutdown(ctx) })

	_, err := f.Plant(ctx, 0, domain.CropWheat)
	require.NoError(t, err)

	// Disconnect before the debounce settles
	w.Suspend(ctx)
	_, err = f.Reset(ctx)
	require.NoError(t, err)
	time.Sleep(400 * time.Millisecond)
	w.Resume(ctx)

	require.Equal(t, 1, store.saveCount())
	assert.True(t, w.LoadOnStart(ctx))
	view := f.View()
	assert.Equal(t, domain.TilePlanted, view.Field[0].State)
	assert.Equal(t, 3, view.Seeds[domain.CropWheat], "seed spent on the planted tile is restored")
}

func TestAutosave_FiredTimerDoesNotWriteAfterSuspend(t *testing.T) {
	ctx := context.Background()
	w, f, store := newAutosaveFixture(t)

	_, err := f.Plant(ctx, 0, domain.CropWheat)
	require.NoError(t, err)
	w.Suspend(ctx)
	_, err = f.Reset(ctx)
	require.NoError(t, err)

	// A timer callback that raced the suspend finds nothing to write
	w.fire()
	assert.Equal(t, 1, store.saveCount())

	raw, err := store.Load(ctx, testSaveKey)
	require.NoError(t, err)
	patch, _, err := snapshot.Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, patch.Field)
	assert.Equal(t, domain.TilePlanted, patch.Field[0].State)
}

func TestAutosave_WriteFailureIsCounted(t *testing.T) {
	ctx := context.Background()
	w, f, store := newAutosaveFixture(t)
	failures := metrics.AutosaveWrites.WithLabelValues(metrics.OutcomeFailure)
	before := testutil.ToFloat64(failures)

	store.setFail(errors.New("disk full"))
	_, err := f.Plant(ctx, 0, domain.CropWheat)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return testutil.ToFloat64(failures) > before }, time.Second, 5*time.Millisecond)

	store.setFail(nil)
	require.NoError(t, w.Flush(ctx), "the next flush retries the unsaved revision")
	assert.Equal(t, 1, store.saveCount())
}

func TestAutosave_ShutdownFlushesPending(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	f := farm.NewService(catalog.Default(), clock.NewSimulatedClock(t0), bus)
	store := newMemStore()
	w := NewAutosaveWorker(f, store, testSaveKey, time.Hour)
	w.Register(ctx, bus)

	_, err := f.Plant(ctx, 0, domain.CropWheat)
	require.NoError(t, err)
	require.NoError(t, w.Shutdown(ctx))
	assert.Equal(t, 1, store.saveCount())

	_, err = f.Plant(ctx, 1, domain.CropWheat)
	require.NoError(t, err)
	time.Sleep(3 * testDebounce)
	assert.Equal(t, 1, store.saveCount(), "no writes after shutdown")
}
