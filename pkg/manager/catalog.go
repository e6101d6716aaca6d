package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/match"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/vodz/pkg/xtream"
	"go.uber.org/zap"
)

// CatalogStats counts what a catalog sync did with each provider item
type CatalogStats struct {
	Inserted      int32
	Updated       int32
	Skipped       int32
	HighWaterMark int64
}

func (s CatalogStats) Upserted() int {
	return int(s.Inserted + s.Updated)
}

// SyncCategories upserts every provider category and returns how many the provider listed
func (m *CatalogManager) SyncCategories(ctx context.Context) (int, error) {
	log := logger.FromCtx(ctx)

	categories, err := m.xtream.ListVODCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list categories: %w", err)
	}

	for _, c := range categories {
		if err := c.Validate(); err != nil {
			log.Debugw("skipping invalid category", zap.Any("category", c), zap.Error(err))
			continue
		}

		_, err := m.storage.UpsertCategory(ctx, model.Category{
			CategoryKey: string(c.CategoryID),
			Name:        c.CategoryName,
			UpdatedAt:   m.now(),
		})
		if err != nil {
			return 0, fmt.Errorf("failed to upsert category %s: %w", c.CategoryID, err)
		}
	}

	log.Infow("synced categories", "count", len(categories))
	return len(categories), nil
}

// SyncCatalog upserts provider titles added after the last successful run and records the run.
// It returns the number of titles upserted.
func (m *CatalogManager) SyncCatalog(ctx context.Context) (int, error) {
	stats, err := m.syncCatalog(ctx)
	return stats.Upserted(), err
}

func (m *CatalogManager) syncCatalog(ctx context.Context) (CatalogStats, error) {
	var stats CatalogStats

	mark, err := m.storage.GetHighWaterMark(ctx)
	if err != nil {
		return stats, err
	}
	stats.HighWaterMark = mark

	run := storage.SyncRun{}
	run.StartedAt = m.now()
	run.HighWaterMark = mark

	runID, err := m.storage.CreateSyncRun(ctx, run)
	if err != nil {
		return stats, err
	}

	log := logger.FromCtx(ctx, zap.Int64("sync_run_id", runID))
	ctx = logger.WithCtx(ctx, log)
	log.Infow("starting catalog sync", "high_water_mark", mark)

	stats, err = m.upsertStreams(ctx, mark)
	if err != nil {
		return stats, errors.Join(err, m.finishRun(ctx, runID, stats, err))
	}

	if err := m.finishRun(ctx, runID, stats, nil); err != nil {
		return stats, err
	}

	log.Infow("catalog sync finished",
		"inserted", stats.Inserted,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"high_water_mark", stats.HighWaterMark)

	return stats, nil
}

// upsertStreams stores every valid stream newer than mark. The returned stats are
// accurate up to the failing item when an error is returned.
func (m *CatalogManager) upsertStreams(ctx context.Context, mark int64) (CatalogStats, error) {
	log := logger.FromCtx(ctx)
	stats := CatalogStats{HighWaterMark: mark}

	streams, err := m.xtream.ListVODStreams(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to list streams: %w", err)
	}

	next := mark
	for i, s := range streams {
		if processed := i + 1; processed%m.progressInterval == 0 {
			log.Infow("syncing catalog", "processed", processed, "total", len(streams), "upserted", stats.Upserted())
		}

		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if err := s.Validate(); err != nil {
			stats.Skipped++
			continue
		}

		added := int64(s.Added)
		if added <= mark {
			stats.Skipped++
			continue
		}

		_, inserted, err := m.storage.UpsertTitle(ctx, titleFromStream(s))
		if err != nil {
			return stats, fmt.Errorf("failed to upsert stream %d: %w", s.StreamID, err)
		}

		if inserted {
			stats.Inserted++
		} else {
			stats.Updated++
		}

		if added > next {
			next = added
		}
	}

	stats.HighWaterMark = next
	return stats, nil
}

func (m *CatalogManager) finishRun(ctx context.Context, runID int64, stats CatalogStats, runErr error) error {
	result := storage.SyncRunResult{
		Status:        storage.SyncRunStatusSuccess,
		FinishedAt:    m.now(),
		Inserted:      stats.Inserted,
		Updated:       stats.Updated,
		Skipped:       stats.Skipped,
		HighWaterMark: stats.HighWaterMark,
	}

	if runErr != nil {
		result.Status = storage.SyncRunStatusError
		result.Error = runErr.Error()
	}

	// close the run even when the sync was cancelled
	if err := m.storage.FinishSyncRun(context.WithoutCancel(ctx), runID, result); err != nil {
		logger.FromCtx(ctx).Errorw("failed to finish sync run", zap.Error(err))
		return fmt.Errorf("failed to finish sync run %d: %w", runID, err)
	}

	return nil
}

func titleFromStream(s xtream.Stream) model.Title {
	t := model.Title{
		StreamID:       int64(s.StreamID),
		Name:           s.Name,
		NameNormalized: match.Normalize(s.Name),
		CategoryKey:    string(s.CategoryID),
		AddedAt:        int64(s.Added),
	}

	if s.StreamIcon != "" {
		icon := s.StreamIcon
		t.Icon = &icon
	}
	if s.ContainerExtension != "" {
		ext := s.ContainerExtension
		t.ContainerExtension = &ext
	}

	return t
}
