package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wyre/moviefinder/internal/model"
)

// Fixed search parameters
const (
	DefaultBaseURL = "https://itunes.apple.com"
	SearchPath     = "/search"
	SearchTerm     = "The Lion King"
	SearchMedia    = "movie"
	SearchLimit    = 5
)

// Transport timeouts, matching common mobile HTTP stack defaults
const (
	DialTimeout           = 10 * time.Second
	TLSHandshakeTimeout   = 10 * time.Second
	ResponseHeaderTimeout = 10 * time.Second
	IdleConnTimeout       = 90 * time.Second
	MaxIdleConns          = 16
)

// maxErrorBody caps how much of a failed response body is kept in StatusError
const maxErrorBody = 512

// Client wraps the iTunes Search API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new iTunes client backed by a pooled transport
func NewClient(logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: newHTTPClient(),
		logger:     logger.With().Str("component", "itunes").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// newHTTPClient builds a keep-alive client. No overall timeout is set; the
// transport bounds connect, handshake and header wait.
func newHTTPClient() *http.Client {
	d := &net.Dialer{
		Timeout:   DialTimeout,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           d.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          MaxIdleConns,
		MaxIdleConnsPerHost:   MaxIdleConns,
		IdleConnTimeout:       IdleConnTimeout,
		TLSHandshakeTimeout:   TLSHandshakeTimeout,
		ResponseHeaderTimeout: ResponseHeaderTimeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{Transport: tr}
}

// SearchURL returns the fixed search request URL
func (c *Client) SearchURL() string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(SearchPath)
	b.WriteString("?term=")
	b.WriteString(url.QueryEscape(SearchTerm))
	b.WriteString("&media=")
	b.WriteString(SearchMedia)
	b.WriteString("&limit=")
	b.WriteString(strconv.Itoa(SearchLimit))
	return b.String()
}

// FetchMovies performs the search request once and decodes the results
func (c *Client) FetchMovies(ctx context.Context) ([]model.Movie, error) {
	requestURL := c.SearchURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().Str("url", requestURL).Msg("Fetching movies")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", requestURL).Msg("Movie request failed")
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn().Int("status", resp.StatusCode).Msg("Unexpected status from iTunes")
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var response searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to decode iTunes response")
		return nil, &DecodeError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	movies, err := response.movies()
	if err != nil {
		c.logger.Warn().Err(err).Msg("Invalid iTunes response")
		return nil, &DecodeError{Err: err}
	}

	c.logger.Debug().Int("count", len(movies)).Msg("Fetched movies")
	return movies, nil
}

// Fetch runs FetchMovies on its own goroutine. The returned channel receives
// exactly one result and is then closed.
func (c *Client) Fetch(ctx context.Context) <-chan model.FetchResult {
	results := make(chan model.FetchResult, 1)

	go func() {
		defer close(results)

		movies, err := c.FetchMovies(ctx)
		if err != nil {
			results <- model.FailedWith(err)
			return
		}
		results <- model.Succeeded(movies)
	}()

	return results
}
