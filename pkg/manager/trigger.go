package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kasuboski/vodz/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrShuttingDown   = errors.New("manager is shutting down")
)

type RunKind string

const (
	RunFullSync      RunKind = "full_sync"
	RunAmbiguityPass RunKind = "ambiguity_pass"
)

// TriggerFullSync starts a full sync in the background and returns its run id.
// It returns ErrSyncInProgress without waiting when a sync is running.
func (m *CatalogManager) TriggerFullSync(ctx context.Context) (string, error) {
	return m.trigger(ctx, RunFullSync, func(ctx context.Context) {
		stats := m.RunFullSync(ctx)
		logger.FromCtx(ctx).Infow("full sync finished",
			"categories", stats.Categories,
			"titles", stats.Titles,
			"enriched", stats.Enriched,
			"ambiguous", stats.Ambiguous,
			"errors", stats.Errors,
			"duration", stats.FinishedAt.Sub(stats.StartedAt))
	})
}

// TriggerAmbiguityPass starts the ambiguity pass in the background and returns its run id
func (m *CatalogManager) TriggerAmbiguityPass(ctx context.Context) (string, error) {
	return m.trigger(ctx, RunAmbiguityPass, func(ctx context.Context) {
		log := logger.FromCtx(ctx)
		resolved, err := m.ReresolveAmbiguous(ctx)
		if err != nil {
			log.Errorw("ambiguity pass failed", zap.Error(err))
			return
		}
		log.Infow("ambiguity pass finished", "resolved", resolved)
	})
}

// Exclusive runs fn in the foreground while holding the sync guard
func (m *CatalogManager) Exclusive(ctx context.Context, fn func(context.Context) error) error {
	acquired, err := m.guard.TryAcquire()
	if err != nil {
		return err
	}
	if !acquired {
		return ErrSyncInProgress
	}
	defer m.release(ctx)

	return fn(ctx)
}

// SyncBusy reports whether a sync is running in this process
func (m *CatalogManager) SyncBusy() bool {
	return m.guard.Busy()
}

// Shutdown cancels background runs and waits for them to stop.
// Triggers fail with ErrShuttingDown once it has been called.
func (m *CatalogManager) Shutdown(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	cancels := m.runs.Values()
	for _, cancel := range cancels {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Debugw("background runs stopped", zap.Int("count", len(cancels)))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for background runs: %w", ctx.Err())
	}
}

func (m *CatalogManager) trigger(ctx context.Context, kind RunKind, run func(context.Context)) (string, error) {
	log := logger.FromCtx(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		log.Debugw("sync trigger rejected during shutdown", zap.String("kind", string(kind)))
		return "", ErrShuttingDown
	}

	acquired, err := m.guard.TryAcquire()
	if err != nil {
		return "", err
	}
	if !acquired {
		log.Debugw("sync trigger rejected", zap.String("kind", string(kind)))
		return "", ErrSyncInProgress
	}

	id := uuid.NewString()
	runLog := logger.Get().With(zap.String("run_id", id), zap.String("kind", string(kind)))

	// the run outlives the request that started it
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	runCtx = logger.WithCtx(runCtx, runLog)

	m.runs.Set(id, cancel)
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()
		defer m.release(runCtx)
		defer m.runs.Delete(id)
		defer cancel()

		runLog.Info("background run started")
		run(runCtx)
	}()
	return id, nil
}

func (m *CatalogManager) release(ctx context.Context) {
	if err := m.guard.Release(); err != nil {
		logger.FromCtx(ctx).Errorw("failed to release sync lock", zap.Error(err))
	}
}
