// Package tmdb is a client for the parts of the TMDB v3 API used to enrich catalog titles.
// The wire types and ClientWithResponses are generated from tmdb.schema.json; API adapts them
// to the calls the enrichment pass makes.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	appendKeywords = "keywords"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected tmdb status")
	ErrMalformedResponse = errors.New("malformed tmdb response")
)

// ITmdb is the metadata source used by the enrichment pass
type ITmdb interface {
	SearchMovie(ctx context.Context, query string) (*MovieSearchPage, error)
	GetMovieDetails(ctx context.Context, id int64) (*MovieDetails, error)
}

type API struct {
	client   ClientWithResponsesInterface
	timeout  time.Duration
	language string
}

type APIOption func(*API)

// NewAPI wraps a generated client. Every call is bounded by the configured timeout.
func NewAPI(client ClientWithResponsesInterface, opts ...APIOption) *API {
	a := &API{
		client:  client,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithTimeout bounds every call, including reading the body
func WithTimeout(timeout time.Duration) APIOption {
	return func(a *API) {
		if timeout > 0 {
			a.timeout = timeout
		}
	}
}

// WithLanguage sets the language parameter sent with every request
func WithLanguage(language string) APIOption {
	return func(a *API) {
		a.language = language
	}
}

// SetRequestAPIKey authenticates requests with a v4 read access token
func SetRequestAPIKey(apiKey string) RequestEditorFn {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Add("Authorization", "Bearer "+apiKey)
		req.Header.Add("accept", "application/json")
		return nil
	}
}

// SearchMovie searches movies by title
func (a *API) SearchMovie(ctx context.Context, query string) (*MovieSearchPage, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	includeAdult := false
	params := &SearchMovieParams{
		Query:        query,
		IncludeAdult: &includeAdult,
		Language:     a.languageParam(),
	}

	return searchPage(a.client.SearchMovieWithResponse(ctx, params))
}

// GetMovieDetails gets the full record of a movie including its keywords
func (a *API) GetMovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	appendToResponse := appendKeywords
	params := &MovieDetailsParams{
		AppendToResponse: &appendToResponse,
		Language:         a.languageParam(),
	}

	return movieDetails(a.client.MovieDetailsWithResponse(ctx, int32(id), params))
}

func (a *API) languageParam() *string {
	if a.language == "" {
		return nil
	}
	return &a.language
}

func searchPage(res *SearchMovieResponse, err error) (*MovieSearchPage, error) {
	if err != nil {
		return nil, requestError("search", err)
	}
	if err := checkStatus(res.StatusCode(), res.Status()); err != nil {
		return nil, err
	}

	if res.JSON200 == nil {
		return nil, fmt.Errorf("%w: search response is not json", ErrMalformedResponse)
	}
	if res.JSON200.Results == nil {
		return nil, fmt.Errorf("%w: search response has no results", ErrMalformedResponse)
	}

	return res.JSON200, nil
}

func movieDetails(res *MovieDetailsResponse, err error) (*MovieDetails, error) {
	if err != nil {
		return nil, requestError("movie details", err)
	}
	if err := checkStatus(res.StatusCode(), res.Status()); err != nil {
		return nil, err
	}

	if res.JSON200 == nil {
		return nil, fmt.Errorf("%w: movie details is not json", ErrMalformedResponse)
	}
	if res.JSON200.ID == 0 {
		return nil, fmt.Errorf("%w: movie details has no id", ErrMalformedResponse)
	}

	return res.JSON200, nil
}

func checkStatus(code int, status string) error {
	if code != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, status)
	}
	return nil
}

// requestError tells decode failures of the generated parser apart from transport failures.
func requestError(call string, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return fmt.Errorf("tmdb %s request failed: %w", call, err)
}

// KeywordList returns the appended keywords, or nil when none were requested.
func (d MovieDetails) KeywordList() []Keyword {
	if d.Keywords == nil {
		return nil
	}
	return d.Keywords.Keywords
}
