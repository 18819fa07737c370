package artwork

import (
	"context"

	"fyne.io/fyne/v2"
)

// Loader defines the interface for the artwork service.
type Loader interface {
	// Load fetches the image at url, blocking until it arrives or fails
	Load(ctx context.Context, url string) (fyne.Resource, error)

	// LoadAsync fetches the image in the background and calls done with the outcome
	LoadAsync(ctx context.Context, url string, done func(fyne.Resource, error))

	// Prefetch warms the cache for urls; individual failures are tolerated
	Prefetch(ctx context.Context, urls []string) error
}
