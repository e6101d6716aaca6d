package manager

import (
	"context"
	"errors"
	"time"

	"github.com/kasuboski/vodz/pkg/logger"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// RunScheduler triggers a full sync every interval until ctx is done, then stops background runs.
// An interval of zero or less only waits for ctx.
func (m *CatalogManager) RunScheduler(ctx context.Context, interval time.Duration) error {
	log := logger.FromCtx(ctx)

	if interval <= 0 {
		log.Info("scheduled full sync disabled")
		<-ctx.Done()
		return m.shutdownRuns(ctx)
	}

	log.Infow("scheduling full sync", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return m.shutdownRuns(ctx)
		case <-ticker.C:
			id, err := m.TriggerFullSync(ctx)
			switch {
			case errors.Is(err, ErrSyncInProgress):
				log.Debug("sync in progress, skipping scheduled full sync")
			case err != nil:
				log.Errorw("failed to trigger scheduled full sync", zap.Error(err))
			default:
				log.Infow("scheduled full sync started", "run_id", id)
			}
		}
	}
}

func (m *CatalogManager) shutdownRuns(ctx context.Context) error {
	logger.FromCtx(ctx).Debug("scheduler context cancelled")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	return m.Shutdown(shutdownCtx)
}
