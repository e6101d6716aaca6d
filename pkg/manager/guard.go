package manager

import (
	"fmt"
	"sync/atomic"

	"github.com/gofrs/flock"
)

// SyncGuard admits one sync at a time.
// With a lock file it also excludes syncs of other processes sharing that file.
type SyncGuard struct {
	busy atomic.Bool
	lock *flock.Flock
}

func NewSyncGuard(lockFile string) *SyncGuard {
	g := &SyncGuard{}
	if lockFile != "" {
		g.lock = flock.New(lockFile)
	}
	return g
}

// TryAcquire never blocks. It returns false when a sync is already running.
func (g *SyncGuard) TryAcquire() (bool, error) {
	if !g.busy.CompareAndSwap(false, true) {
		return false, nil
	}

	if g.lock == nil {
		return true, nil
	}

	locked, err := g.lock.TryLock()
	if err != nil {
		g.busy.Store(false)
		return false, fmt.Errorf("failed to lock %s: %w", g.lock.Path(), err)
	}
	if !locked {
		g.busy.Store(false)
		return false, nil
	}

	return true, nil
}

func (g *SyncGuard) Release() error {
	defer g.busy.Store(false)

	if g.lock == nil {
		return nil
	}

	return g.lock.Unlock()
}

// Busy reports whether this process is running a sync
func (g *SyncGuard) Busy() bool {
	return g.busy.Load()
}
