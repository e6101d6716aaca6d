package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMetadata() storage.TitleMetadata {
	return storage.TitleMetadata{
		TmdbID:              603,
		Title:               "The Matrix",
		OriginalTitle:       "The Matrix",
		OriginalLanguage:    "en",
		Overview:            "Set in the 22nd century.",
		PosterPath:          "/poster.jpg",
		BackdropPath:        "/backdrop.jpg",
		ReleaseDate:         "1999-03-30",
		Runtime:             ptr(int32(136)),
		VoteAverage:         ptr(8.2),
		VoteCount:           ptr(int32(24000)),
		Genres:              []storage.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		SpokenLanguages:     []storage.SpokenLanguage{{ISO6391: "en", Name: "English", EnglishName: "English"}},
		ProductionCompanies: []storage.ProductionCompany{{ID: 79, Name: "Village Roadshow Pictures", OriginCountry: "US"}},
		ProductionCountries: []storage.ProductionCountry{{ISO31661: "US", Name: "United States of America"}},
		Budget:              ptr(int64(63000000)),
		Revenue:             ptr(int64(463517383)),
		Keywords:            []storage.Keyword{{ID: 310, Name: "artificial intelligence"}},
		Homepage:            "http://www.warnerbros.com/matrix",
		Status:              "Released",
		Discrepancies: storage.Discrepancies{
			Year:   &storage.YearDiscrepancy{Xtream: 2023, Tmdb: 1999},
			Genres: &storage.GenreReport{Tmdb: []string{"Action", "Science Fiction"}},
		},
		EnrichedAt: time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC),
	}
}

// assertResolution checks the title flag and which side of the resolution exists
func assertResolution(t *testing.T, ctx context.Context, store storage.Storage, id int64, state storage.ResolutionState) {
	t.Helper()

	title, err := store.GetTitle(ctx, id)
	require.NoError(t, err)

	_, metaErr := store.GetTitleMetadata(ctx, id)
	_, candErr := store.GetTitleCandidates(ctx, id)

	switch state {
	case storage.ResolutionMatched:
		assert.False(t, title.Ambiguous)
		assert.NoError(t, metaErr)
		assert.ErrorIs(t, candErr, storage.ErrNotFound)
	case storage.ResolutionAmbiguous:
		assert.True(t, title.Ambiguous)
		assert.ErrorIs(t, metaErr, storage.ErrNotFound)
		assert.NoError(t, candErr)
	default:
		assert.False(t, title.Ambiguous)
		assert.ErrorIs(t, metaErr, storage.ErrNotFound)
		assert.ErrorIs(t, candErr, storage.ErrNotFound)
	}
}

func TestResolutionStorage_Matched(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)
	id := createTitle(t, ctx, store, 603, "The Matrix", 1700000000)

	want := fullMetadata()
	err := store.SetResolution(ctx, id, storage.Matched(want))
	require.NoError(t, err)
	assertResolution(t, ctx, store, id, storage.ResolutionMatched)

	got, err := store.GetTitleMetadata(ctx, id)
	require.NoError(t, err)

	assert.True(t, want.EnrichedAt.Equal(got.EnrichedAt))
	want.TitleID = id
	want.EnrichedAt = got.EnrichedAt
	assert.Equal(t, &want, got)

	t.Run("matching again replaces metadata", func(t *testing.T) {
		updated := fullMetadata()
		updated.TmdbID = 604
		updated.Genres = nil
		updated.Runtime = nil
		updated.Discrepancies = storage.Discrepancies{}

		err := store.SetResolution(ctx, id, storage.Matched(updated))
		require.NoError(t, err)

		got, err := store.GetTitleMetadata(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(604), got.TmdbID)
		assert.Empty(t, got.Genres)
		assert.Nil(t, got.Runtime)
		assert.True(t, got.Discrepancies.Empty())
	})
}

func TestResolutionStorage_Transitions(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)
	id := createTitle(t, ctx, store, 1, "Heat", 1700000000)

	candidates := []storage.Candidate{
		{ID: 949, Title: "Heat", ReleaseDate: "1995-12-15", VoteAverage: ptr(7.9), Popularity: ptr(40.5)},
		{ID: 15, Title: "Heat", ReleaseDate: "1986-03-14"},
	}

	assertResolution(t, ctx, store, id, storage.ResolutionUnresolved)

	t.Run("matched to ambiguous drops the metadata", func(t *testing.T) {
		require.NoError(t, store.SetResolution(ctx, id, storage.Matched(fullMetadata())))
		assertResolution(t, ctx, store, id, storage.ResolutionMatched)

		require.NoError(t, store.SetResolution(ctx, id, storage.Ambiguous(candidates)))
		assertResolution(t, ctx, store, id, storage.ResolutionAmbiguous)

		got, err := store.GetTitleCandidates(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, candidates, got)
	})

	t.Run("ambiguous replaces the candidate set", func(t *testing.T) {
		require.NoError(t, store.SetResolution(ctx, id, storage.Ambiguous(candidates[:1])))

		got, err := store.GetTitleCandidates(ctx, id)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("ambiguous to matched drops the candidates", func(t *testing.T) {
		require.NoError(t, store.SetResolution(ctx, id, storage.Matched(fullMetadata())))
		assertResolution(t, ctx, store, id, storage.ResolutionMatched)
	})

	t.Run("unresolved drops everything", func(t *testing.T) {
		require.NoError(t, store.SetResolution(ctx, id, storage.Ambiguous(candidates)))
		require.NoError(t, store.SetResolution(ctx, id, storage.Unresolved()))
		assertResolution(t, ctx, store, id, storage.ResolutionUnresolved)

		require.NoError(t, store.SetResolution(ctx, id, storage.Matched(fullMetadata())))
		require.NoError(t, store.SetResolution(ctx, id, storage.Unresolved()))
		assertResolution(t, ctx, store, id, storage.ResolutionUnresolved)
	})
}

func TestResolutionStorage_Errors(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)
	id := createTitle(t, ctx, store, 1, "Heat", 1700000000)

	t.Run("missing title", func(t *testing.T) {
		err := store.SetResolution(ctx, 404, storage.Matched(fullMetadata()))
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = store.GetTitleMetadata(ctx, 404)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("invalid resolutions are rejected before writing", func(t *testing.T) {
		err := store.SetResolution(ctx, id, storage.Ambiguous(nil))
		assert.ErrorIs(t, err, storage.ErrInvalidResolution)

		err = store.SetResolution(ctx, id, storage.Resolution{State: storage.ResolutionMatched})
		assert.ErrorIs(t, err, storage.ErrInvalidResolution)

		err = store.SetResolution(ctx, id, storage.Resolution{State: "bogus"})
		assert.ErrorIs(t, err, storage.ErrInvalidResolution)

		assertResolution(t, ctx, store, id, storage.ResolutionUnresolved)
	})
}
