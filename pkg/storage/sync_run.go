package storage

import (
	"time"

	"github.com/kasuboski/vodz/pkg/machine"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
)

type SyncRunStatus string

const (
	SyncRunStatusNew     SyncRunStatus = ""
	SyncRunStatusRunning SyncRunStatus = "running"
	SyncRunStatusSuccess SyncRunStatus = "success"
	SyncRunStatusError   SyncRunStatus = "error"
)

type SyncRun struct {
	model.SyncRun
}

func (r SyncRun) Machine() *machine.StateMachine[SyncRunStatus] {
	return machine.New(SyncRunStatus(r.Status),
		machine.From(SyncRunStatusNew).To(SyncRunStatusRunning),
		machine.From(SyncRunStatusRunning).To(SyncRunStatusSuccess, SyncRunStatusError),
	)
}

// SyncRunResult closes a running sync run.
type SyncRunResult struct {
	Status        SyncRunStatus
	FinishedAt    time.Time
	Inserted      int32
	Updated       int32
	Skipped       int32
	HighWaterMark int64
	Error         string
}
