package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/storage"
	"go.uber.org/zap"
)

type FullSyncStats struct {
	Categories int       `json:"categories"`
	Titles     int       `json:"titles"`
	Enriched   int       `json:"enriched"`
	Ambiguous  int       `json:"ambiguous"`
	Errors     []string  `json:"errors"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// RunFullSync syncs categories, then the catalog, then enriches every title and counts the ambiguous ones.
// The first failing stage ends the sync and the stats gathered so far are returned.
func (m *CatalogManager) RunFullSync(ctx context.Context) FullSyncStats {
	log := logger.FromCtx(ctx)
	stats := FullSyncStats{
		Errors:    []string{},
		StartedAt: m.now(),
	}

	fail := func(stage string, err error, recordRun bool) FullSyncStats {
		msg := fmt.Sprintf("%s: %s", stage, err)
		log.Errorw("full sync stage failed", zap.String("stage", stage), zap.Error(err))
		stats.Errors = append(stats.Errors, msg)
		if recordRun {
			m.recordFailedRun(ctx, msg)
		}
		stats.FinishedAt = m.now()
		return stats
	}

	categories, err := m.SyncCategories(ctx)
	if err != nil {
		return fail("categories", err, true)
	}
	stats.Categories = categories

	// a catalog sync records its own run
	titles, err := m.SyncCatalog(ctx)
	stats.Titles = titles
	if err != nil {
		return fail("catalog", err, false)
	}

	enriched, err := m.EnrichAll(ctx)
	stats.Enriched = enriched
	if err != nil {
		return fail("enrich", err, true)
	}

	ambiguous, err := m.storage.CountAmbiguousTitles(ctx)
	if err != nil {
		return fail("ambiguous", err, true)
	}
	stats.Ambiguous = int(ambiguous)
	stats.FinishedAt = m.now()

	return stats
}

// recordFailedRun leaves an error run carrying the current mark so the failure shows in the run log
func (m *CatalogManager) recordFailedRun(ctx context.Context, msg string) {
	ctx = context.WithoutCancel(ctx)
	log := logger.FromCtx(ctx)

	mark, err := m.storage.GetHighWaterMark(ctx)
	if err != nil {
		log.Errorw("failed to get high water mark for failed run", zap.Error(err))
	}

	run := storage.SyncRun{}
	run.StartedAt = m.now()
	run.HighWaterMark = mark

	id, err := m.storage.CreateSyncRun(ctx, run)
	if err != nil {
		log.Errorw("failed to record failed run", zap.Error(err))
		return
	}

	err = m.storage.FinishSyncRun(ctx, id, storage.SyncRunResult{
		Status:        storage.SyncRunStatusError,
		FinishedAt:    m.now(),
		HighWaterMark: mark,
		Error:         msg,
	})
	if err != nil {
		log.Errorw("failed to record failed run", zap.Int64("sync_run_id", id), zap.Error(err))
	}
}
