package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kasuboski/vodz/pkg/playlist"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titlePageBody struct {
	Response struct {
		Titles []map[string]any `json:"titles"`
		Meta   map[string]any   `json:"meta"`
	} `json:"response"`
}

func TestServer_ListTitles(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	createTitle(t, ts.storage, 1, "heat")
	ambiguous := createTitle(t, ts.storage, 2, "obscure")
	require.NoError(t, ts.storage.SetResolution(ctx, ambiguous, storage.Ambiguous([]storage.Candidate{{ID: 7, Title: "Obscure"}})))

	rr := ts.do(t, http.MethodGet, "/api/v1/titles", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("content-type"))

	tag := rr.Header().Get("ETag")
	require.NotEmpty(t, tag)

	var body titlePageBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Response.Titles, 2)
	assert.Equal(t, float64(2), body.Response.Meta["total"])

	_, ok := body.Response.Titles[0]["candidates"]
	assert.False(t, ok, "matched or unresolved titles have no candidates")
	assert.Equal(t, []any{map[string]any{"id": float64(7), "title": "Obscure"}}, body.Response.Titles[1]["candidates"])

	t.Run("not modified", func(t *testing.T) {
		rr := ts.do(t, http.MethodGet, "/api/v1/titles", http.Header{"If-None-Match": []string{tag}})
		assert.Equal(t, http.StatusNotModified, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("changed listing has a new etag", func(t *testing.T) {
		createTitle(t, ts.storage, 3, "up")

		rr := ts.do(t, http.MethodGet, "/api/v1/titles", http.Header{"If-None-Match": []string{tag}})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEqual(t, tag, rr.Header().Get("ETag"))
	})

	t.Run("filters", func(t *testing.T) {
		rr := ts.do(t, http.MethodGet, "/api/v1/titles?ambiguous=true&pageSize=5", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var body titlePageBody
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Response.Titles, 1)
		assert.Equal(t, "obscure", body.Response.Titles[0]["name"])
		assert.Equal(t, float64(5), body.Response.Meta["page_size"])
	})

	for _, target := range []string{
		"/api/v1/titles?page=0",
		"/api/v1/titles?pageSize=abc",
		"/api/v1/titles?year=nineteen",
		"/api/v1/titles?minRating=high",
		"/api/v1/titles?ambiguous=maybe",
	} {
		t.Run(target, func(t *testing.T) {
			rr := ts.do(t, http.MethodGet, target, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestServer_GetTitle(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	id := createTitle(t, ts.storage, 1, "heat")
	require.NoError(t, ts.storage.SetResolution(ctx, id, storage.Matched(storage.TitleMetadata{TmdbID: 949, Title: "Heat"})))

	rr := ts.do(t, http.MethodGet, "/api/v1/titles/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Response map[string]any `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "heat", body.Response["name"])
	metadata, ok := body.Response["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(949), metadata["tmdb_id"])
	assert.NotContains(t, body.Response, "candidates")

	rr = ts.do(t, http.MethodGet, "/api/v1/titles/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.do(t, http.MethodGet, "/api/v1/titles/999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"title 999 not found"}`, rr.Body.String())
}

func TestServer_ListCategories(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"response":[]}`, rr.Body.String())
}

func TestServer_Playlist(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	id := createTitle(t, ts.storage, 101, "heat")
	require.NoError(t, ts.storage.SetResolution(ctx, id, storage.Matched(storage.TitleMetadata{
		TmdbID: 949,
		Genres: []storage.Genre{{ID: 80, Name: "Crime"}},
	})))
	ts.xtream.EXPECT().StreamURL(int64(101), "mp4").Return("http://provider/movie/u/p/101.mp4").AnyTimes()

	rr := ts.do(t, http.MethodGet, "/api/v1/playlist?genre=Crime", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, playlist.ContentType, rr.Header().Get("content-type"))
	assert.Contains(t, rr.Body.String(), "#EXTM3U\n")
	assert.Contains(t, rr.Body.String(), "http://provider/movie/u/p/101.mp4\n")

	rr = ts.do(t, http.MethodGet, "/api/v1/playlist?genre=Comedy", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "#EXTM3U\n", rr.Body.String())

	rr = ts.do(t, http.MethodGet, "/api/v1/playlist?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMatchesETag(t *testing.T) {
	tag := etag([]byte("body"))

	assert.True(t, matchesETag(tag, tag))
	assert.True(t, matchesETag(`"other", `+tag, tag))
	assert.True(t, matchesETag("W/"+tag, tag))
	assert.True(t, matchesETag("*", tag))
	assert.False(t, matchesETag("", tag))
	assert.False(t, matchesETag(`"other"`, tag))
}

func TestServer_Stats(t *testing.T) {
	ts := newTestServer(t)
	createTitle(t, ts.storage, 1, "heat")

	rr := ts.do(t, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"response":{
		"titles": 1,
		"by_resolution": {"matched": 0, "ambiguous": 0, "unresolved": 1},
		"by_category": [{"category_key": "1", "name": "", "count": 1}]
	}}`, rr.Body.String())
}
