package manager

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/kasuboski/vodz/pkg/match"
	"github.com/kasuboski/vodz/pkg/storage"
	catalogSqlite "github.com/kasuboski/vodz/pkg/storage/sqlite"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/vodz/pkg/tmdb"
	tmdbMocks "github.com/kasuboski/vodz/pkg/tmdb/mocks"
	"github.com/kasuboski/vodz/pkg/xtream"
	xtreamMocks "github.com/kasuboski/vodz/pkg/xtream/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 2023-11-14T22:13:20Z
const addedAt2023 int64 = 1700000000

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()
	ctx := context.Background()

	store, err := catalogSqlite.New(ctx, filepath.Join(t.TempDir(), "vodz.sqlite"))
	require.NoError(t, err)
	require.NoError(t, store.RunMigrations(ctx))

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

type testManager struct {
	*CatalogManager
	tmdb    *tmdbMocks.MockITmdb
	xtream  *xtreamMocks.MockIXtream
	storage storage.Storage
}

func newTestManager(t *testing.T) testManager {
	t.Helper()

	ctrl := gomock.NewController(t)
	tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
	xtreamMock := xtreamMocks.NewMockIXtream(ctrl)
	store := newTestStore(t)

	m := New(tmdbMock, xtreamMock, store, nil, WithClock(func() time.Time { return fixedNow }))

	return testManager{
		CatalogManager: m,
		tmdb:           tmdbMock,
		xtream:         xtreamMock,
		storage:        store,
	}
}

func stream(id int64, name string, added int64) xtream.Stream {
	return xtream.Stream{
		StreamID:   xtream.FlexInt(id),
		Name:       name,
		CategoryID: "1",
		Added:      xtream.FlexInt(added),
	}
}

func createTitle(t *testing.T, store storage.Storage, streamID int64, name string, added int64) *model.Title {
	t.Helper()
	ctx := context.Background()

	id, _, err := store.UpsertTitle(ctx, model.Title{
		StreamID:       streamID,
		Name:           name,
		NameNormalized: match.Normalize(name),
		CategoryKey:    "1",
		AddedAt:        added,
	})
	require.NoError(t, err)

	title, err := store.GetTitle(ctx, id)
	require.NoError(t, err)
	return title
}

func searchResult(id int64, title, releaseDate string, rating *float64) tmdb.MovieSearchResult {
	return tmdb.MovieSearchResult{
		ID:          id,
		Title:       title,
		ReleaseDate: releaseDate,
		VoteAverage: rating,
	}
}

func TestNew(t *testing.T) {
	m := New(nil, nil, nil, nil)
	require.NotNil(t, m.guard)
	assert.Equal(t, defaultProgressInterval, m.progressInterval)
	assert.False(t, m.SyncBusy())
	assert.Equal(t, time.UTC, m.now().Location())

	m = New(nil, nil, nil, nil, WithProgressInterval(5), WithProgressInterval(0))
	assert.Equal(t, 5, m.progressInterval)
}
