package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	h "net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout       = 30 * time.Second
	defaultRetryInterval = time.Second
	userAgent            = "orgscope"
)

var ErrUnauthorized = errors.New("unauthorized")
var ErrNotFound = errors.New("not found")
var ErrRateLimited = errors.New("rate limit exceeded")

// JSONGetter fetches a URL and returns its decoded JSON body.
type JSONGetter interface {
	GetJSON(ctx context.Context, url string) (interface{}, error)
}

var _ JSONGetter = (*Client)(nil)

type ClientOption func(*Client)

func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

func WithVersion(version string) ClientOption {
	return func(c *Client) {
		c.version = version
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithRetries sets how many extra attempts are made after a failed request.
// Client errors (4xx) are never retried.
func WithRetries(retries int, interval time.Duration) ClientOption {
	return func(c *Client) {
		if retries >= 0 {
			c.retries = retries
		}
		if interval > 0 {
			c.retryInterval = interval
		}
	}
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithHTTPClient(httpClient *h.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

type Client struct {
	token         string
	version       string
	retries       int
	retryInterval time.Duration
	httpClient    *h.Client
	logger        *zap.Logger
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		retryInterval: defaultRetryInterval,
		httpClient:    &h.Client{Timeout: defaultTimeout},
		logger:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var defaultClient = NewClient()

// GetJSON fetches url with a default client and returns the decoded body.
func GetJSON(ctx context.Context, url string) (interface{}, error) {
	return defaultClient.GetJSON(ctx, url)
}

// GetToken returns the GitHub token found in the environment, if any.
func GetToken() string {
	return strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
}

func (c *Client) GetJSON(ctx context.Context, url string) (interface{}, error) {
	var target interface{}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), uint64(c.retries)),
		ctx,
	)

	err := backoff.Retry(func() error {
		return c.request(ctx, url, &target)
	}, policy)
	if err != nil {
		return nil, err
	}

	return target, nil
}

func (c *Client) request(ctx context.Context, url string, target interface{}) error {
	req, err := h.NewRequestWithContext(ctx, h.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(err)
	}

	requestID := uuid.NewV4().String()

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-Request-Id", requestID)
	if c.version != "" {
		req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", userAgent, c.version))
	} else {
		req.Header.Set("User-Agent", userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logger := c.logger.With(zap.String("request_id", requestID), zap.String("url", url))
	logger.Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("request failed", zap.Error(err))
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}

	defer resp.Body.Close()

	logger.Debug("received response", zap.Int("status", resp.StatusCode))

	if resp.StatusCode == h.StatusUnauthorized {
		return backoff.Permanent(ErrUnauthorized)
	}

	if resp.StatusCode == h.StatusNotFound {
		return backoff.Permanent(ErrNotFound)
	}

	if resp.StatusCode == h.StatusTooManyRequests ||
		(resp.StatusCode == h.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0") {
		responseData, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %v", ErrRateLimited, strings.TrimSpace(string(responseData)))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorMessage
		json.NewDecoder(resp.Body).Decode(&apiErr)

		err := fmt.Errorf("request to %s failed (%d) %v", url, resp.StatusCode, apiErr.Message)
		if resp.StatusCode < 500 {
			return backoff.Permanent(err)
		}
		return err
	}

	if resp.StatusCode == h.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to decode response body: %w", err))
	}

	return nil
}
