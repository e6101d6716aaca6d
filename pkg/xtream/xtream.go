// Package xtream reads the VOD catalog of an Xtream Codes provider.
package xtream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	mhttp "github.com/kasuboski/vodz/pkg/http"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/xtream.go github.com/kasuboski/vodz/pkg/xtream IXtream

const (
	DefaultTimeout   = 30 * time.Second
	DefaultContainer = "mp4"

	actionVODCategories = "get_vod_categories"
	actionVODStreams    = "get_vod_streams"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected xtream status")
	ErrMalformedResponse = errors.New("malformed xtream response")
)

// IXtream is the catalog source
type IXtream interface {
	ListVODCategories(ctx context.Context) ([]Category, error)
	ListVODStreams(ctx context.Context) ([]Stream, error)
	StreamURL(streamID int64, ext string) string
}

type Client struct {
	baseURL  string
	username string
	password string
	timeout  time.Duration
	client   mhttp.HTTPClient
}

type ClientOption func(*Client)

// WithHTTPClient sets the client used to send requests
func WithHTTPClient(client mhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithTimeout bounds every call, including reading the body
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func New(baseURL, username, password string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid xtream base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid xtream base url %q: missing scheme or host", baseURL)
	}

	c := &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		username: username,
		password: password,
		timeout:  DefaultTimeout,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) ListVODCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.call(ctx, actionVODCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListVODStreams(ctx context.Context) ([]Stream, error) {
	var streams []Stream
	if err := c.call(ctx, actionVODStreams, &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

// StreamURL is the playback location of a VOD stream
func (c *Client) StreamURL(streamID int64, ext string) string {
	if ext == "" {
		ext = DefaultContainer
	}
	return fmt.Sprintf("%s/movie/%s/%s/%d.%s", c.baseURL, url.PathEscape(c.username), url.PathEscape(c.password), streamID, ext)
}

func (c *Client) call(ctx context.Context, action string, dest any) error {
	params := url.Values{}
	params.Set("username", c.username)
	params.Set("password", c.password)
	params.Set("action", action)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/player_api.php?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		if res != nil {
			res.Body.Close()
		}
		// url.Error carries the full url which includes the credentials
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("xtream %s request failed: %w", action, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned %s", ErrUnexpectedStatus, action, res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read xtream %s response: %w", action, err)
	}

	// null decodes into a nil slice without error
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return fmt.Errorf("%w: %s returned null", ErrMalformedResponse, action)
	}

	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, action, err)
	}

	return nil
}

// FlexInt is an integer the provider may send as a number or a quoted number.
// Anything else decodes to zero so a single bad item fails validation instead of the whole list.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = 0

	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(fl)
	}

	return nil
}

// FlexString is a string the provider may send as a number
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}
