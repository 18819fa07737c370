package artwork

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newImageServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		switch r.URL.Path {
		case "/missing.jpg":
			w.WriteHeader(http.StatusNotFound)
		case "/empty.jpg":
			w.WriteHeader(http.StatusOK)
		default:
			w.Header().Set("Content-Type", "image/png")
			w.Write(pngHeader)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewService(t *testing.T) {
	service := NewService(zerolog.Nop(), 3)
	assert.Equal(t, 3, service.maxParallel)
	assert.Empty(t, service.cache)

	service = NewService(zerolog.Nop(), 0)
	assert.Equal(t, 1, service.maxParallel)
}

func TestLoad(t *testing.T) {
	var hits int32
	server := newImageServer(t, &hits)
	service := NewService(zerolog.Nop(), 2)

	res, err := service.Load(context.Background(), server.URL+"/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", res.Name())
	assert.Equal(t, pngHeader, res.Content())

	// Second load is served from memory
	again, err := service.Load(context.Background(), server.URL+"/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, res, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestLoad_Errors(t *testing.T) {
	var hits int32
	server := newImageServer(t, &hits)
	service := NewService(zerolog.Nop(), 2)

	_, err := service.Load(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyURL)

	_, err = service.Load(context.Background(), server.URL+"/missing.jpg")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)

	_, err = service.Load(context.Background(), server.URL+"/empty.jpg")
	assert.Error(t, err)

	_, ok := service.Cached(server.URL + "/missing.jpg")
	assert.False(t, ok, "failed loads must not be cached")
}

func TestLoadAsync(t *testing.T) {
	var hits int32
	server := newImageServer(t, &hits)
	service := NewService(zerolog.Nop(), 1)

	type outcome struct {
		res fyne.Resource
		err error
	}
	results := make(chan outcome, 2)

	service.LoadAsync(context.Background(), server.URL+"/poster.jpg", func(res fyne.Resource, err error) {
		results <- outcome{res, err}
	})
	service.LoadAsync(context.Background(), server.URL+"/missing.jpg", func(res fyne.Resource, err error) {
		results <- outcome{res, err}
	})

	var loaded, failed int
	for i := 0; i < 2; i++ {
		select {
		case o := <-results:
			if o.err != nil {
				failed++
			} else {
				loaded++
				assert.Equal(t, "poster.jpg", o.res.Name())
			}
		case <-time.After(5 * time.Second):
			t.Fatal("LoadAsync did not report in time")
		}
	}
	assert.Equal(t, 1, loaded)
	assert.Equal(t, 1, failed)
}

func TestPrefetch_ToleratesFailures(t *testing.T) {
	var hits int32
	server := newImageServer(t, &hits)
	service := NewService(zerolog.Nop(), 2)

	urls := []string{
		server.URL + "/1.jpg",
		server.URL + "/missing.jpg",
		"",
		server.URL + "/2.jpg",
	}

	err := service.Prefetch(context.Background(), urls)
	require.NoError(t, err)

	_, ok := service.Cached(server.URL + "/1.jpg")
	assert.True(t, ok)
	_, ok = service.Cached(server.URL + "/2.jpg")
	assert.True(t, ok)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestPrefetch_Canceled(t *testing.T) {
	var hits int32
	server := newImageServer(t, &hits)
	service := NewService(zerolog.Nop(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.Prefetch(ctx, []string{server.URL + "/1.jpg"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResourceName(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"http://x/a.jpg", "a.jpg"},
		{"https://is1-ssl.mzstatic.com/image/thumb/100x100bb.jpg?x=1", "100x100bb.jpg"},
		{"http://x/", "x"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, resourceName(test.url), test.url)
	}
}
