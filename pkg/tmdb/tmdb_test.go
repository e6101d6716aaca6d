package tmdb

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mhttp "github.com/kasuboski/vodz/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json;charset=utf-8"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func newTestAPI(t *testing.T, server string, clientOpts []ClientOption, opts ...APIOption) *API {
	t.Helper()
	client, err := NewClientWithResponses(server, clientOpts...)
	require.NoError(t, err)
	return NewAPI(client, opts...)
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestMovieDetails(t *testing.T) {
	t.Run("successful response", func(t *testing.T) {
		res := jsonResponse(http.StatusOK, `{
			"id": 603,
			"title": "The Matrix",
			"original_title": "The Matrix",
			"release_date": "1999-03-30",
			"runtime": 136,
			"vote_average": 8.2,
			"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}],
			"spoken_languages": [{"iso_639_1": "en", "name": "English", "english_name": "English"}],
			"production_countries": [{"iso_3166_1": "US", "name": "United States of America"}],
			"keywords": {"keywords": [{"id": 310, "name": "artificial intelligence"}]}
		}`)

		details, err := movieDetails(ParseMovieDetailsResponse(res))
		require.NoError(t, err)
		assert.Equal(t, int64(603), details.ID)
		assert.Equal(t, "The Matrix", details.Title)
		require.NotNil(t, details.Runtime)
		assert.Equal(t, int32(136), *details.Runtime)
		require.NotNil(t, details.VoteAverage)
		assert.Equal(t, 8.2, *details.VoteAverage)
		assert.Len(t, details.Genres, 2)
		assert.Equal(t, "en", details.SpokenLanguages[0].ISO6391)
		assert.Equal(t, "US", details.ProductionCountries[0].ISO31661)
		assert.Equal(t, []Keyword{{ID: 310, Name: "artificial intelligence"}}, details.KeywordList())
	})

	t.Run("status code other than 200", func(t *testing.T) {
		_, err := movieDetails(ParseMovieDetailsResponse(jsonResponse(http.StatusNotFound, `{"status_message": "not found"}`)))
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("empty response body", func(t *testing.T) {
		_, err := movieDetails(ParseMovieDetailsResponse(jsonResponse(http.StatusOK, `{}`)))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := movieDetails(ParseMovieDetailsResponse(jsonResponse(http.StatusOK, `{"id": `)))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("not json", func(t *testing.T) {
		res := jsonResponse(http.StatusOK, `<html></html>`)
		res.Header.Set("Content-Type", "text/html")
		_, err := movieDetails(ParseMovieDetailsResponse(res))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing keywords", func(t *testing.T) {
		details, err := movieDetails(ParseMovieDetailsResponse(jsonResponse(http.StatusOK, `{"id": 1}`)))
		require.NoError(t, err)
		assert.Nil(t, details.KeywordList())
		assert.Nil(t, details.Runtime)
	})
}

func TestSearchPage(t *testing.T) {
	t.Run("successful response", func(t *testing.T) {
		res := jsonResponse(http.StatusOK, `{
			"page": 1,
			"total_results": 2,
			"results": [
				{"id": 603, "title": "The Matrix", "release_date": "1999-03-30", "vote_average": 8.2},
				{"id": 604, "title": "The Matrix Reloaded", "release_date": "2003-05-15", "popularity": 40.5}
			]
		}`)

		search, err := searchPage(ParseSearchMovieResponse(res))
		require.NoError(t, err)
		require.Len(t, search.Results, 2)
		assert.Equal(t, int64(603), search.Results[0].ID)
		assert.Nil(t, search.Results[0].Popularity)
		assert.Nil(t, search.Results[1].VoteAverage)
		assert.Equal(t, 2, search.TotalResults)
	})

	t.Run("empty results", func(t *testing.T) {
		search, err := searchPage(ParseSearchMovieResponse(jsonResponse(http.StatusOK, `{"page": 1, "results": []}`)))
		require.NoError(t, err)
		assert.Empty(t, search.Results)
	})

	t.Run("missing results", func(t *testing.T) {
		_, err := searchPage(ParseSearchMovieResponse(jsonResponse(http.StatusOK, `{"page": 1}`)))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("results of the wrong type", func(t *testing.T) {
		_, err := searchPage(ParseSearchMovieResponse(jsonResponse(http.StatusOK, `{"results": {"id": 1}}`)))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := searchPage(ParseSearchMovieResponse(jsonResponse(http.StatusInternalServerError, ``)))
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}

func TestAPI_SearchMovie(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		writeJSON(w, `{"page": 1, "results": [{"id": 11, "title": "Star Wars"}]}`)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, []ClientOption{WithRequestEditorFn(SetRequestAPIKey("token"))}, WithLanguage("en-US"))

	search, err := api.SearchMovie(context.Background(), "Star Wars & More")
	require.NoError(t, err)
	require.Len(t, search.Results, 1)
	assert.Equal(t, int64(11), search.Results[0].ID)

	require.NotNil(t, got)
	assert.Equal(t, "/3/search/movie", got.URL.Path)
	assert.Equal(t, "Star Wars & More", got.URL.Query().Get("query"))
	assert.Equal(t, "false", got.URL.Query().Get("include_adult"))
	assert.Equal(t, "en-US", got.URL.Query().Get("language"))
	assert.Equal(t, "Bearer token", got.Header.Get("Authorization"))
}

func TestAPI_SearchMovieWithoutLanguage(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, `{"results": []}`)
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL, nil).SearchMovie(context.Background(), "Heat")
	require.NoError(t, err)
	assert.NotContains(t, query, "language")
}

func TestAPI_GetMovieDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/3/movie/603" || r.URL.Query().Get("append_to_response") != "keywords" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, `{"id": 603, "title": "The Matrix", "keywords": {"keywords": [{"id": 1, "name": "hacker"}]}}`)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL+"/", nil)

	details, err := api.GetMovieDetails(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", details.Title)
	assert.Len(t, details.KeywordList(), 1)

	_, err = api.GetMovieDetails(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestAPI_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id": `)
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL, nil).GetMovieDetails(context.Background(), 603)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAPI_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, nil, WithTimeout(50*time.Millisecond))

	_, err := api.SearchMovie(context.Background(), "slow")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}

func TestAPI_RateLimited(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		writeJSON(w, `{"page": 1, "results": []}`)
	}))
	defer srv.Close()

	httpClient := mhttp.NewRateLimitedHTTPClient(mhttp.WithBaseBackoff(time.Millisecond))
	api := newTestAPI(t, srv.URL, []ClientOption{WithHTTPClient(httpClient)})

	search, err := api.SearchMovie(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, search.Results)
	assert.Equal(t, 2, calls)
}
