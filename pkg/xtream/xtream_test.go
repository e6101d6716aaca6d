package xtream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "user", "pass")
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	_, err := New("provider.example", "user", "pass")
	assert.Error(t, err)

	c, err := New("http://provider.example:8080/", "user", "pass", WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "http://provider.example:8080", c.baseURL)
	assert.Equal(t, time.Second, c.timeout)
}

func TestClient_ListVODCategories(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/player_api.php", r.URL.Path)
		assert.Equal(t, "user", r.URL.Query().Get("username"))
		assert.Equal(t, "pass", r.URL.Query().Get("password"))
		assert.Equal(t, "get_vod_categories", r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(`[
			{"category_id": "1", "category_name": "Action", "parent_id": 0},
			{"category_id": 2, "category_name": "Drama", "parent_id": "0"}
		]`))
	})

	categories, err := c.ListVODCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Category{
		{CategoryID: "1", CategoryName: "Action"},
		{CategoryID: "2", CategoryName: "Drama"},
	}, categories)
}

func TestClient_ListVODStreams(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "get_vod_streams", r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(`[
			{"num": 1, "stream_id": 101, "name": "Heat", "stream_icon": "http://img/heat.jpg", "added": "1700000000", "category_id": "1", "container_extension": "mkv"},
			{"num": 2, "stream_id": "102", "name": "Alien", "added": 1700000100, "category_id": 3, "rating": 8.1}
		]`))
	})

	streams, err := c.ListVODStreams(context.Background())
	require.NoError(t, err)
	require.Len(t, streams, 2)

	assert.Equal(t, FlexInt(101), streams[0].StreamID)
	assert.Equal(t, FlexInt(1700000000), streams[0].Added)
	assert.Equal(t, FlexString("1"), streams[0].CategoryID)
	assert.Equal(t, "mkv", streams[0].ContainerExtension)

	assert.Equal(t, FlexInt(102), streams[1].StreamID)
	assert.Equal(t, FlexString("3"), streams[1].CategoryID)
	assert.Equal(t, FlexString("8.1"), streams[1].Rating)
}

func TestClient_Errors(t *testing.T) {
	t.Run("unexpected status", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := c.ListVODStreams(context.Background())
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("not a list", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"user_info": {"auth": 0}}`))
		})
		_, err := c.ListVODCategories(context.Background())
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("null body", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("null\n"))
		})
		streams, err := c.ListVODStreams(context.Background())
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Nil(t, streams)

		_, err = c.ListVODCategories(context.Background())
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("invalid json", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"stream_id": `))
		})
		_, err := c.ListVODStreams(context.Background())
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("timeout does not leak credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		c, err := New(srv.URL, "user", "secret", WithTimeout(20*time.Millisecond))
		require.NoError(t, err)

		_, err = c.ListVODStreams(context.Background())
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotContains(t, err.Error(), "secret")
	})
}

func TestClient_StreamURL(t *testing.T) {
	c, err := New("http://provider.example/", "user", "pass")
	require.NoError(t, err)

	assert.Equal(t, "http://provider.example/movie/user/pass/101.mkv", c.StreamURL(101, "mkv"))
	assert.Equal(t, "http://provider.example/movie/user/pass/7.mp4", c.StreamURL(7, ""))
}

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in   string
		want FlexInt
	}{
		{`42`, 42},
		{`"42"`, 42},
		{`""`, 0},
		{`null`, 0},
		{`"12.0"`, 12},
		{`"n/a"`, 0},
		{`true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got FlexInt
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		in   string
		want FlexString
	}{
		{`"12"`, "12"},
		{`12`, "12"},
		{`null`, ""},
		{`{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got FlexString
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Stream{StreamID: 1, Name: "Heat", Added: 1700000000, CategoryID: "1"}
	assert.NoError(t, valid.Validate())

	for name, s := range map[string]Stream{
		"missing id":       {Name: "Heat", Added: 1, CategoryID: "1"},
		"missing name":     {StreamID: 1, Added: 1, CategoryID: "1"},
		"missing added":    {StreamID: 1, Name: "Heat", CategoryID: "1"},
		"missing category": {StreamID: 1, Name: "Heat", Added: 1},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, s.Validate())
		})
	}

	assert.NoError(t, Category{CategoryID: "1", CategoryName: "Action"}.Validate())
	assert.Error(t, Category{CategoryID: "1"}.Validate())
	assert.Error(t, Category{CategoryName: "Action"}.Validate())
}
