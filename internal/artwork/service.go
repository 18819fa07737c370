package artwork

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Defaults
const (
	DefaultMaxParallel = 4
	DefaultTimeout     = 20 * time.Second
	MaxImageBytes      = 5 << 20
)

// ErrEmptyURL is returned when a row has no artwork URL
var ErrEmptyURL = errors.New("artwork URL is empty")

// StatusError represents a non-2xx image response
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("artwork request for %s failed with status %d", e.URL, e.StatusCode)
}

// Service handles artwork loading
type Service struct {
	httpClient  *http.Client
	slots       *semaphore.Weighted
	maxParallel int
	logger      zerolog.Logger

	cacheMutex sync.RWMutex
	cache      map[string]fyne.Resource
}

// NewService creates a new artwork service
func NewService(logger zerolog.Logger, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		slots:       semaphore.NewWeighted(int64(maxParallel)),
		maxParallel: maxParallel,
		logger:      logger.With().Str("component", "artwork").Logger(),
		cache:       make(map[string]fyne.Resource),
	}
}

// SetHTTPClient replaces the HTTP client used for image requests
func (s *Service) SetHTTPClient(client *http.Client) {
	if client != nil {
		s.httpClient = client
	}
}

// Cached returns the resource for url if it was loaded before
func (s *Service) Cached(url string) (fyne.Resource, bool) {
	s.cacheMutex.RLock()
	defer s.cacheMutex.RUnlock()
	res, ok := s.cache[url]
	return res, ok
}

// Load fetches the image at url
func (s *Service) Load(ctx context.Context, url string) (fyne.Resource, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}
	if res, ok := s.Cached(url); ok {
		return res, nil
	}

	if err := s.slots.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.slots.Release(1)

	// Another load may have finished while we waited for a slot
	if res, ok := s.Cached(url); ok {
		return res, nil
	}

	res, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	s.cacheMutex.Lock()
	s.cache[url] = res
	s.cacheMutex.Unlock()

	return res, nil
}

// LoadAsync runs Load on a new goroutine and reports to done
func (s *Service) LoadAsync(ctx context.Context, url string, done func(fyne.Resource, error)) {
	go func() {
		res, err := s.Load(ctx, url)
		if err != nil {
			s.logger.Debug().Err(err).Str("url", url).Msg("Artwork load failed")
		}
		if done != nil {
			done(res, err)
		}
	}()
}

// Prefetch loads all urls with bounded concurrency. Failed images are logged
// and skipped; only context cancellation is returned.
func (s *Service) Prefetch(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)

	for _, url := range urls {
		if strings.TrimSpace(url) == "" {
			continue
		}
		url := url
		g.Go(func() error {
			if _, err := s.Load(ctx, url); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logger.Debug().Err(err).Str("url", url).Msg("Artwork prefetch failed")
			}
			return nil
		})
	}

	return g.Wait()
}

// fetch downloads and wraps the image bytes
func (s *Service) fetch(ctx context.Context, url string) (fyne.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty image body from %s", url)
	}

	return fyne.NewStaticResource(resourceName(url), body), nil
}

// resourceName derives a stable resource name from the URL path
func resourceName(url string) string {
	name := path.Base(strings.SplitN(url, "?", 2)[0])
	if name == "" || name == "." || name == "/" {
		return "artwork"
	}
	return name
}
