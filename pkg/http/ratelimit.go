package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kasuboski/vodz/pkg/logger"
	"go.uber.org/zap"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/http.go github.com/kasuboski/vodz/pkg/http HTTPClient

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = time.Millisecond * 500
	DefaultMaxBackoff  = time.Second * 30
)

// ErrRateLimited is returned with the last 429 response once every attempt was throttled
var ErrRateLimited = errors.New("rate limit exceeded")

var now = time.Now

// RateLimitedClient retries requests answered with 429 Too Many Requests.
// Any other status, including server errors, is returned to the caller as is.
type RateLimitedClient struct {
	client      HTTPClient
	baseBackoff time.Duration
	maxBackoff  time.Duration
	maxRetries  int
}

// ClientOption is a function that can be used to configure a RateLimitedClient
type ClientOption func(*RateLimitedClient)

// NewRateLimitedHTTPClient creates a new RateLimitedClient that respects 429 status codes
func NewRateLimitedHTTPClient(opts ...ClientOption) *RateLimitedClient {
	c := &RateLimitedClient{
		client:      http.DefaultClient,
		maxRetries:  DefaultMaxRetries,
		baseBackoff: DefaultBaseBackoff,
		maxBackoff:  DefaultMaxBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithMaxRetries sets the maximum number of attempts for the client
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *RateLimitedClient) {
		if maxRetries > 0 {
			c.maxRetries = maxRetries
		}
	}
}

// WithBaseBackoff sets the wait before the first retry when the server does not say how long to wait
func WithBaseBackoff(baseBackoff time.Duration) ClientOption {
	return func(c *RateLimitedClient) {
		if baseBackoff > 0 {
			c.baseBackoff = baseBackoff
		}
	}
}

// WithMaxBackoff caps any single wait, including one asked for by Retry-After
func WithMaxBackoff(maxBackoff time.Duration) ClientOption {
	return func(c *RateLimitedClient) {
		if maxBackoff > 0 {
			c.maxBackoff = maxBackoff
		}
	}
}

// WithHTTPClient sets the http client to use for the client
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *RateLimitedClient) {
		c.client = client
	}
}

// Do executes the HTTP request while respecting 429 rate limits.
// It blocks until a non 429 response arrives, the attempts run out or the request context is done.
// Once the attempts run out the last 429 response is returned along with ErrRateLimited.
func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	log := logger.FromCtx(req.Context())

	var resp *http.Response
	var err error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		resp, err = c.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		if attempt == c.maxRetries-1 {
			break
		}

		retryAfter := c.getRetryAfter(resp, attempt)
		resp.Body.Close()

		log.Debugw("rate limited, waiting to retry",
			zap.String("host", req.URL.Host),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", retryAfter))

		timer := time.NewTimer(retryAfter)
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}
	}

	return resp, fmt.Errorf("%w after %d attempts", ErrRateLimited, c.maxRetries)
}

// getRetryAfter honours Retry-After in seconds or as an http date, falling back to 2^n backoff
func (c *RateLimitedClient) getRetryAfter(resp *http.Response, attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * c.baseBackoff

	if header := resp.Header.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds >= 0 {
			wait = time.Duration(seconds) * time.Second
		} else if at, err := http.ParseTime(header); err == nil {
			wait = max(at.Sub(now()), 0)
		}
	}

	if c.maxBackoff > 0 && wait > c.maxBackoff {
		return c.maxBackoff
	}
	return wait
}
