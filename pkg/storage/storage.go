package storage

import (
	"context"
	"errors"

	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/storage.go github.com/kasuboski/vodz/pkg/storage Storage

var ErrNotFound = errors.New("not found in storage")

type Storage interface {
	RunMigrations(ctx context.Context) error
	Close() error
	CategoryStorage
	TitleStorage
	ResolutionStorage
	SyncRunStorage
	StatsStorage
}

type CategoryStorage interface {
	UpsertCategory(ctx context.Context, category model.Category) (int64, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
}

type TitleStorage interface {
	// UpsertTitle inserts a title or overwrites the provider owned fields of the title with the same stream id.
	// The ambiguity flag is never touched.
	UpsertTitle(ctx context.Context, title model.Title) (id int64, inserted bool, err error)
	GetTitle(ctx context.Context, id int64) (*model.Title, error)
	ListTitles(ctx context.Context, filter TitleFilter) ([]*model.Title, error)
	CountTitles(ctx context.Context, filter TitleFilter) (int64, error)
	CountAmbiguousTitles(ctx context.Context) (int64, error)
	ListPlaylistEntries(ctx context.Context, filter PlaylistFilter) ([]*PlaylistEntry, error)
}

type ResolutionStorage interface {
	GetTitleMetadata(ctx context.Context, titleID int64) (*TitleMetadata, error)
	GetTitleCandidates(ctx context.Context, titleID int64) ([]Candidate, error)
	// SetResolution records the outcome of matching a title in a single transaction.
	// After it returns a title has metadata, a candidate set or neither, never both.
	SetResolution(ctx context.Context, titleID int64, resolution Resolution) error
}

type SyncRunStorage interface {
	CreateSyncRun(ctx context.Context, run SyncRun) (int64, error)
	FinishSyncRun(ctx context.Context, id int64, result SyncRunResult) error
	GetSyncRun(ctx context.Context, id int64) (*SyncRun, error)
	GetHighWaterMark(ctx context.Context) (int64, error)
	ListSyncRuns(ctx context.Context, limit int) ([]*SyncRun, error)
}

type StatsStorage interface {
	GetCatalogStats(ctx context.Context) (*CatalogStats, error)
}
