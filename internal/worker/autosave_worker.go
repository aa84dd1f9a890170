package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
	"github.com/osse101/ArcFarmia_Go/internal/metrics"
	"github.com/osse101/ArcFarmia_Go/internal/savestore"
	"github.com/osse101/ArcFarmia_Go/internal/snapshot"
)

// AutosaveWorker persists the farm snapshot after changes settle.
// Each farm.changed event restarts the debounce timer; when it fires the full
// snapshot is written. Failures are logged and counted, never returned.
type AutosaveWorker struct {
	farm     farm.Service
	store    savestore.Store
	key      string
	debounce time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	suspended bool
	saved     int64 // revision of the last successful write
	writeMu   sync.Mutex
	shutdown  chan struct{}
	wg        sync.WaitGroup
	baseCtx   context.Context
}

// NewAutosaveWorker creates a new AutosaveWorker
func NewAutosaveWorker(f farm.Service, store savestore.Store, key string, debounce time.Duration) *AutosaveWorker {
	return &AutosaveWorker{
		farm:     f,
		store:    store,
		key:      key,
		debounce: debounce,
		saved:    -1,
		shutdown: make(chan struct{}),
		baseCtx:  context.Background(),
	}
}

// Register subscribes the worker to farm changes. ctx is used for the
// writes triggered by the debounce timer.
func (w *AutosaveWorker) Register(ctx context.Context, bus event.Bus) {
	w.baseCtx = ctx
	bus.Subscribe(event.FarmChanged, w.handleChange)
}

func (w *AutosaveWorker) handleChange(_ context.Context, _ event.Event) error {
	w.MarkDirty()
	return nil
}

// LoadOnStart restores the persisted snapshot. Read and decode failures are
// logged and the defaults stay in place. It reports whether anything was restored.
func (w *AutosaveWorker) LoadOnStart(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	raw, err := w.store.Load(ctx, w.key)
	if errors.Is(err, domain.ErrSaveNotFound) {
		log.Info(LogMsgAutosaveNoSave, "key", w.key)
		return false
	}
	if err != nil {
		log.Warn(LogMsgAutosaveLoadFailed, "key", w.key, "error", err)
		return false
	}

	patch, warnings, err := snapshot.Decode(raw)
	if err != nil {
		log.Warn(LogMsgAutosaveDecodeFailed, "key", w.key, "error", err)
		return false
	}
	for _, warning := range warnings {
		log.Warn(LogMsgAutosaveDecodeWarning, "key", w.key, "detail", warning)
	}

	res, err := w.farm.Restore(ctx, patch)
	if err != nil {
		log.Warn(LogMsgAutosaveDecodeFailed, "key", w.key, "error", err)
		return false
	}

	w.mu.Lock()
	w.saved = res.Revision
	w.mu.Unlock()

	log.Info(LogMsgAutosaveRestored, "key", w.key, "revision", res.Revision)
	return true
}

// MarkDirty (re)starts the debounce timer unless autosave is suspended
func (w *AutosaveWorker) MarkDirty() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.suspended {
		return
	}
	select {
	case <-w.shutdown:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *AutosaveWorker) fire() {
	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		return
	default:
	}
	w.wg.Add(1)
	w.mu.Unlock()

	defer w.wg.Done()
	_ = w.write(w.baseCtx)
}

// Suspend writes any pending change, then stops autosaving so the persisted
// snapshot survives a progression reset. A debounce timer that already fired
// waits on the write lock and finds autosave suspended.
func (w *AutosaveWorker) Suspend(ctx context.Context) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	_ = w.writeLocked(ctx)

	w.mu.Lock()
	w.suspended = true
	w.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgAutosaveSuspended)
}

// Resume re-enables autosaving
func (w *AutosaveWorker) Resume(ctx context.Context) {
	w.mu.Lock()
	w.suspended = false
	w.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgAutosaveResumed)
}

// Suspended reports whether autosave is currently suspended
func (w *AutosaveWorker) Suspended() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.suspended
}

// Flush writes the snapshot now unless suspended or already up to date
func (w *AutosaveWorker) Flush(ctx context.Context) error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	return w.write(ctx)
}

// write persists the current snapshot. Writers are serialised so an older
// snapshot never overwrites a newer one.
func (w *AutosaveWorker) write(ctx context.Context) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	return w.writeLocked(ctx)
}

// Caller must hold writeMu
func (w *AutosaveWorker) writeLocked(ctx context.Context) error {
	log := logger.FromContext(ctx)

	revision := w.farm.Revision()
	w.mu.Lock()
	skip := w.suspended || revision == w.saved
	w.mu.Unlock()
	if skip {
		return nil
	}

	raw, err := snapshot.Encode(w.farm.Snapshot())
	if err == nil {
		err = w.store.Save(ctx, w.key, raw)
	}
	if err != nil {
		metrics.AutosaveWrites.WithLabelValues(metrics.OutcomeFailure).Inc()
		log.Error(LogMsgAutosaveWriteFailed, "key", w.key, "error", err)
		return err
	}

	w.mu.Lock()
	w.saved = revision
	w.mu.Unlock()

	metrics.AutosaveWrites.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Debug(LogMsgAutosaveWritten, "key", w.key, "revision", revision, "bytes", len(raw))
	return nil
}

// Shutdown flushes pending changes and waits for in-flight writes
func (w *AutosaveWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAutosaveShutdown)

	flushErr := w.Flush(ctx)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgAutosaveShutdownDone)
		return flushErr
	case <-ctx.Done():
		log.Warn(LogMsgAutosaveShutdownSlow)
		return ctx.Err()
	}
}
