package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/kasuboski/vodz/pkg/match"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func matrixDetails() *tmdb.MovieDetails {
	return &tmdb.MovieDetails{
		ID:            603,
		Title:         "The Matrix",
		OriginalTitle: "The Matrix",
		ReleaseDate:   "1999-03-30",
		Runtime:       ptr(int32(136)),
		VoteAverage:   ptr(8.2),
		Genres: []tmdb.Genre{
			{ID: 878, Name: "Science Fiction"},
			{ID: 28, Name: "Action"},
		},
		SpokenLanguages: []tmdb.SpokenLanguage{{ISO6391: "en", Name: "English"}},
		Keywords:        &tmdb.Keywords{Keywords: []tmdb.Keyword{{ID: 310, Name: "artificial intelligence"}}},
	}
}

// assertExclusive checks a title has metadata or candidates, never both, in step with its flag
func assertExclusive(t *testing.T, store storage.Storage, titleID int64, want storage.ResolutionState) {
	t.Helper()
	ctx := context.Background()

	title, err := store.GetTitle(ctx, titleID)
	require.NoError(t, err)

	_, metadataErr := store.GetTitleMetadata(ctx, titleID)
	_, candidatesErr := store.GetTitleCandidates(ctx, titleID)

	switch want {
	case storage.ResolutionMatched:
		assert.False(t, title.Ambiguous)
		assert.NoError(t, metadataErr)
		assert.ErrorIs(t, candidatesErr, storage.ErrNotFound)
	case storage.ResolutionAmbiguous:
		assert.True(t, title.Ambiguous)
		assert.ErrorIs(t, metadataErr, storage.ErrNotFound)
		assert.NoError(t, candidatesErr)
	default:
		assert.False(t, title.Ambiguous)
		assert.ErrorIs(t, metadataErr, storage.ErrNotFound)
		assert.ErrorIs(t, candidatesErr, storage.ErrNotFound)
	}
}

func TestEnrichOne(t *testing.T) {
	t.Run("matched", func(t *testing.T) {
		m := newTestManager(t)
		ctx := context.Background()
		title := createTitle(t, m.storage, 1, "The Matrix", addedAt2023)

		m.tmdb.EXPECT().SearchMovie(gomock.Any(), "The Matrix").Return(&tmdb.MovieSearchPage{
			Results: []tmdb.MovieSearchResult{
				searchResult(604, "The Matrix Reloaded", "2003-05-15", ptr(7.0)),
				searchResult(603, "The Matrix", "1999-03-30", ptr(8.2)),
			},
		}, nil)
		m.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(603)).Return(matrixDetails(), nil)

		result, err := m.EnrichOne(ctx, title)
		require.NoError(t, err)
		assert.Equal(t, match.Matched, result.Outcome)
		assert.Equal(t, int64(603), result.TmdbID)
		assert.Nil(t, result.Discrepancies.Title)
		assert.Equal(t, &storage.YearDiscrepancy{Xtream: 2023, Tmdb: 1999}, result.Discrepancies.Year)
		assert.Equal(t, &storage.GenreReport{Tmdb: []string{"Action", "Science Fiction"}}, result.Discrepancies.Genres)

		assertExclusive(t, m.storage, int64(title.ID), storage.ResolutionMatched)

		metadata, err := m.storage.GetTitleMetadata(ctx, int64(title.ID))
		require.NoError(t, err)
		assert.Equal(t, int64(603), metadata.TmdbID)
		assert.Equal(t, []string{"Science Fiction", "Action"}, metadata.GenreNames())
		assert.Equal(t, []storage.Keyword{{ID: 310, Name: "artificial intelligence"}}, metadata.Keywords)
		assert.Equal(t, ptr(int32(136)), metadata.Runtime)
		assert.True(t, fixedNow.Equal(metadata.EnrichedAt))
		assert.Equal(t, result.Discrepancies, metadata.Discrepancies)
	})

	t.Run("ambiguous", func(t *testing.T) {
		m := newTestManager(t)
		ctx := context.Background()
		title := createTitle(t, m.storage, 1, "Obscure", addedAt2023)

		m.tmdb.EXPECT().SearchMovie(gomock.Any(), "Obscure").Return(&tmdb.MovieSearchPage{
			Results: []tmdb.MovieSearchResult{
				searchResult(9, "Obscure", "2023-01-01", ptr(2.5)),
			},
		}, nil)

		result, err := m.EnrichOne(ctx, title)
		require.NoError(t, err)
		assert.Equal(t, match.Ambiguous, result.Outcome)
		assert.Equal(t, 1, result.Candidates)

		assertExclusive(t, m.storage, int64(title.ID), storage.ResolutionAmbiguous)

		candidates, err := m.storage.GetTitleCandidates(ctx, int64(title.ID))
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, int64(9), candidates[0].ID)
		assert.Equal(t, ptr(2.5), candidates[0].VoteAverage)
	})

	t.Run("no match", func(t *testing.T) {
		m := newTestManager(t)
		title := createTitle(t, m.storage, 1, "Nothing", addedAt2023)

		m.tmdb.EXPECT().SearchMovie(gomock.Any(), "Nothing").Return(&tmdb.MovieSearchPage{Results: []tmdb.MovieSearchResult{}}, nil)

		result, err := m.EnrichOne(context.Background(), title)
		require.NoError(t, err)
		assert.Equal(t, match.NoMatch, result.Outcome)

		assertExclusive(t, m.storage, int64(title.ID), storage.ResolutionUnresolved)
	})

	t.Run("matched then ambiguous drops metadata", func(t *testing.T) {
		m := newTestManager(t)
		ctx := context.Background()
		title := createTitle(t, m.storage, 1, "The Matrix", addedAt2023)

		gomock.InOrder(
			m.tmdb.EXPECT().SearchMovie(gomock.Any(), "The Matrix").Return(&tmdb.MovieSearchPage{
				Results: []tmdb.MovieSearchResult{searchResult(603, "The Matrix", "1999-03-30", ptr(8.2))},
			}, nil),
			m.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(603)).Return(matrixDetails(), nil),
			m.tmdb.EXPECT().SearchMovie(gomock.Any(), "The Matrix").Return(&tmdb.MovieSearchPage{
				Results: []tmdb.MovieSearchResult{searchResult(603, "The Matrix", "1999-03-30", ptr(3.0))},
			}, nil),
		)

		_, err := m.EnrichOne(ctx, title)
		require.NoError(t, err)
		assertExclusive(t, m.storage, int64(title.ID), storage.ResolutionMatched)

		result, err := m.EnrichOne(ctx, title)
		require.NoError(t, err)
		assert.Equal(t, match.Ambiguous, result.Outcome)
		assertExclusive(t, m.storage, int64(title.ID), storage.ResolutionAmbiguous)
	})

	t.Run("search failure stores nothing", func(t *testing.T) {
		m := newTestManager(t)
		title := createTitle(t, m.storage, 1, "The Matrix", addedAt2023)

		m.tmdb.EXPECT().SearchMovie(gomock.Any(), gomock.Any()).Return(nil, tmdb.ErrUnexpectedStatus)

		_, err := m.EnrichOne(context.Background(), title)
		assert.ErrorIs(t, err, tmdb.ErrUnexpectedStatus)
		assertExclusive(t, m.storage, int64(title.ID), storage.ResolutionUnresolved)
	})

	t.Run("details failure stores nothing", func(t *testing.T) {
		m := newTestManager(t)
		title := createTitle(t, m.storage, 1, "The Matrix", addedAt2023)

		m.tmdb.EXPECT().SearchMovie(gomock.Any(), gomock.Any()).Return(&tmdb.MovieSearchPage{
			Results: []tmdb.MovieSearchResult{searchResult(603, "The Matrix", "1999-03-30", nil)},
		}, nil)
		m.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(603)).Return(nil, context.DeadlineExceeded)

		_, err := m.EnrichOne(context.Background(), title)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assertExclusive(t, m.storage, int64(title.ID), storage.ResolutionUnresolved)
	})
}

func TestEnrichAll(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	matrix := createTitle(t, m.storage, 1, "The Matrix", addedAt2023)
	broken := createTitle(t, m.storage, 2, "Broken", addedAt2023)
	obscure := createTitle(t, m.storage, 3, "Obscure", addedAt2023)

	gomock.InOrder(
		m.tmdb.EXPECT().SearchMovie(gomock.Any(), "The Matrix").Return(&tmdb.MovieSearchPage{
			Results: []tmdb.MovieSearchResult{searchResult(603, "The Matrix", "1999-03-30", ptr(8.2))},
		}, nil),
		m.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(603)).Return(matrixDetails(), nil),
		m.tmdb.EXPECT().SearchMovie(gomock.Any(), "Broken").Return(nil, errors.New("connection reset")),
		m.tmdb.EXPECT().SearchMovie(gomock.Any(), "Obscure").Return(&tmdb.MovieSearchPage{
			Results: []tmdb.MovieSearchResult{
				searchResult(1, "Obscure I", "", ptr(1.0)),
				searchResult(2, "Obscure II", "", ptr(2.0)),
			},
		}, nil),
	)

	matched, err := m.EnrichAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, matched)

	assertExclusive(t, m.storage, int64(matrix.ID), storage.ResolutionMatched)
	assertExclusive(t, m.storage, int64(broken.ID), storage.ResolutionUnresolved)
	assertExclusive(t, m.storage, int64(obscure.ID), storage.ResolutionAmbiguous)
}

func TestEnrichAll_Cancelled(t *testing.T) {
	m := newTestManager(t)
	createTitle(t, m.storage, 1, "The Matrix", addedAt2023)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	matched, err := m.EnrichAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, matched)
}

func TestReresolveAmbiguous(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	stillAmbiguous := createTitle(t, m.storage, 1, "Obscure", addedAt2023)
	nowMatches := createTitle(t, m.storage, 2, "The Matrix", addedAt2023)
	createTitle(t, m.storage, 3, "Untouched", addedAt2023)

	stale := []storage.Candidate{{ID: 1, Title: "Obscure I"}, {ID: 2, Title: "Obscure II"}}
	require.NoError(t, m.storage.SetResolution(ctx, int64(stillAmbiguous.ID), storage.Ambiguous(stale)))
	require.NoError(t, m.storage.SetResolution(ctx, int64(nowMatches.ID), storage.Ambiguous([]storage.Candidate{{ID: 603, Title: "The Matrix"}})))

	m.tmdb.EXPECT().SearchMovie(gomock.Any(), "Obscure").Return(&tmdb.MovieSearchPage{
		Results: []tmdb.MovieSearchResult{searchResult(5, "Something Else", "", ptr(1.0))},
	}, nil)
	m.tmdb.EXPECT().SearchMovie(gomock.Any(), "The Matrix").Return(&tmdb.MovieSearchPage{
		Results: []tmdb.MovieSearchResult{searchResult(603, "The Matrix", "1999-03-30", ptr(8.2))},
	}, nil)
	m.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(603)).Return(matrixDetails(), nil)

	resolved, err := m.ReresolveAmbiguous(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)

	assertExclusive(t, m.storage, int64(stillAmbiguous.ID), storage.ResolutionAmbiguous)
	candidates, err := m.storage.GetTitleCandidates(ctx, int64(stillAmbiguous.ID))
	require.NoError(t, err)
	assert.Equal(t, stale, candidates)

	assertExclusive(t, m.storage, int64(nowMatches.ID), storage.ResolutionMatched)

	count, err := m.storage.CountAmbiguousTitles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestReresolveAmbiguous_NoMatchKeepsCandidates(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	title := createTitle(t, m.storage, 1, "Obscure", addedAt2023)
	require.NoError(t, m.storage.SetResolution(ctx, int64(title.ID), storage.Ambiguous([]storage.Candidate{{ID: 1, Title: "Obscure I"}})))

	m.tmdb.EXPECT().SearchMovie(gomock.Any(), "Obscure").Return(&tmdb.MovieSearchPage{Results: []tmdb.MovieSearchResult{}}, nil)

	resolved, err := m.ReresolveAmbiguous(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, resolved)
	assertExclusive(t, m.storage, int64(title.ID), storage.ResolutionAmbiguous)
}
