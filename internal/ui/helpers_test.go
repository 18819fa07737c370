package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/wyre/moviefinder/internal/config"
	"github.com/wyre/moviefinder/internal/model"
	"github.com/wyre/moviefinder/internal/viewmodel"
)

const waitTimeout = 5 * time.Second

var errNoPoster = errors.New("poster unavailable")

// staticFetcher answers every fetch with the next queued result
type staticFetcher struct {
	mu      sync.Mutex
	results []model.FetchResult
}

func (f *staticFetcher) Fetch(ctx context.Context) <-chan model.FetchResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(chan model.FetchResult, 1)
	if len(f.results) > 0 {
		out <- f.results[0]
		f.results = f.results[1:]
	}
	close(out)
	return out
}

// recordingNotifier counts notices instead of showing them
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

// fakeLoader records requested URLs and answers from a fixed table
type fakeLoader struct {
	mu        sync.Mutex
	requested []string
	resources map[string]fyne.Resource
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{resources: make(map[string]fyne.Resource)}
}

func (l *fakeLoader) Load(ctx context.Context, url string) (fyne.Resource, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requested = append(l.requested, url)
	if res, ok := l.resources[url]; ok {
		return res, nil
	}
	return nil, errNoPoster
}

func (l *fakeLoader) LoadAsync(ctx context.Context, url string, done func(fyne.Resource, error)) {
	go func() {
		res, err := l.Load(ctx, url)
		done(res, err)
	}()
}

func (l *fakeLoader) Prefetch(ctx context.Context, urls []string) error {
	return nil
}

func (l *fakeLoader) Requested() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.requested...)
}

func newTestScreen(t *testing.T, fetcher viewmodel.MovieFetcher, loader *fakeLoader) (*MovieScreen, *viewmodel.MovieViewModel, *recordingNotifier) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	vm := viewmodel.NewMovieViewModel(fetcher, zerolog.Nop())
	notifier := &recordingNotifier{}
	screen := NewMovieScreen(window, config.NewSettings(app), vm, loader, zerolog.Nop(), WithNotifier(notifier))
	return screen, vm, notifier
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("activation did not finish in time")
	}
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", value, err)
	}
	return ts
}
