package manager

import (
	"context"
	"sync"
	"time"

	"github.com/kasuboski/vodz/pkg/cache"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/tmdb"
	"github.com/kasuboski/vodz/pkg/xtream"
)

const defaultProgressInterval = 100

// CatalogManager keeps the local catalog in step with the provider and the metadata source
type CatalogManager struct {
	tmdb    tmdb.ITmdb
	xtream  xtream.IXtream
	storage storage.Storage
	guard   *SyncGuard

	runs *cache.Cache[string, context.CancelFunc]
	wg   sync.WaitGroup
	// mu guards closed and orders wg.Add before Shutdown's Wait
	mu     sync.Mutex
	closed bool

	now              func() time.Time
	progressInterval int
}

type Option func(*CatalogManager)

// WithClock overrides the clock used for run and enrichment timestamps
func WithClock(now func() time.Time) Option {
	return func(m *CatalogManager) {
		m.now = now
	}
}

// WithProgressInterval sets how many catalog items pass between progress logs
func WithProgressInterval(n int) Option {
	return func(m *CatalogManager) {
		if n > 0 {
			m.progressInterval = n
		}
	}
}

// New creates a manager. A nil guard only coordinates syncs within this process.
func New(tmdbClient tmdb.ITmdb, xtreamClient xtream.IXtream, store storage.Storage, guard *SyncGuard, opts ...Option) *CatalogManager {
	if guard == nil {
		guard = NewSyncGuard("")
	}

	m := &CatalogManager{
		tmdb:             tmdbClient,
		xtream:           xtreamClient,
		storage:          store,
		guard:            guard,
		runs:             cache.New[string, context.CancelFunc](),
		now:              func() time.Time { return time.Now().UTC() },
		progressInterval: defaultProgressInterval,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}
