package viewmodel

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wyre/moviefinder/internal/model"
)

// errNoResult is reported when a fetcher closes its channel without a result
var errNoResult = errors.New("fetch finished without a result")

// MovieFetcher starts one catalog fetch. The channel yields at most one result.
type MovieFetcher interface {
	Fetch(ctx context.Context) <-chan model.FetchResult
}

// MovieViewModel owns the movie list and load state of the movie screen
type MovieViewModel struct {
	fetcher MovieFetcher
	logger  zerolog.Logger

	movies    *Value[[]model.Movie]
	loadState *Value[model.LoadState]

	// mu guards activation bookkeeping
	mu         sync.Mutex
	generation uint64
	inFlight   bool
	done       chan struct{}
	cancel     context.CancelFunc

	// writeMu serializes slot writes against Deactivate
	writeMu sync.Mutex
}

// NewMovieViewModel creates a view model in the Waiting state with no movies
func NewMovieViewModel(fetcher MovieFetcher, logger zerolog.Logger) *MovieViewModel {
	return &MovieViewModel{
		fetcher:   fetcher,
		logger:    logger.With().Str("component", "viewmodel").Logger(),
		movies:    NewValue([]model.Movie{}),
		loadState: NewValue(model.LoadStateWaiting),
	}
}

// Movies returns the observable movie list
func (vm *MovieViewModel) Movies() *Value[[]model.Movie] {
	return vm.movies
}

// LoadState returns the observable load state
func (vm *MovieViewModel) LoadState() *Value[model.LoadState] {
	return vm.loadState
}

// Activate resets the state to Waiting and starts one fetch. The returned
// channel is closed once the outcome has been applied or dropped. If a fetch
// is already running its channel is returned and nothing new is started.
func (vm *MovieViewModel) Activate(ctx context.Context) <-chan struct{} {
	vm.mu.Lock()
	if vm.inFlight {
		done := vm.done
		vm.mu.Unlock()
		return done
	}

	vm.generation++
	gen := vm.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	vm.inFlight = true
	vm.done = done
	vm.cancel = cancel
	vm.mu.Unlock()

	attemptID := uuid.NewString()
	logger := vm.logger.With().Str("attempt", attemptID).Logger()

	vm.writeMu.Lock()
	vm.movies.Set([]model.Movie{})
	vm.loadState.Set(model.LoadStateWaiting)
	vm.writeMu.Unlock()

	logger.Debug().Msg("Starting movie fetch")

	go func() {
		defer close(done)
		defer vm.finish(gen)

		var result model.FetchResult
		select {
		case r, ok := <-vm.fetcher.Fetch(fetchCtx):
			if !ok {
				r = model.FailedWith(errNoResult)
			}
			result = r
		case <-fetchCtx.Done():
			logger.Debug().Err(fetchCtx.Err()).Msg("Movie fetch abandoned")
			return
		}

		vm.apply(gen, result, logger)
	}()

	return done
}

// Deactivate cancels the running fetch and discards its outcome. No slot write
// happens after Deactivate returns. Must not be called from a slot listener.
func (vm *MovieViewModel) Deactivate() {
	vm.mu.Lock()
	vm.generation++
	cancel := vm.cancel
	vm.cancel = nil
	vm.inFlight = false
	vm.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	// Wait out a write that may already be in progress
	vm.writeMu.Lock()
	vm.writeMu.Unlock()
}

// apply publishes the result if its activation is still current
func (vm *MovieViewModel) apply(gen uint64, result model.FetchResult, logger zerolog.Logger) {
	vm.writeMu.Lock()
	defer vm.writeMu.Unlock()

	if !vm.isCurrent(gen) {
		logger.Debug().Msg("Dropping result of a stale activation")
		return
	}

	if result.Failed() {
		logger.Warn().Err(result.Err).Msg("Movie fetch failed")
		vm.loadState.Set(model.LoadStateFailure)
		return
	}

	logger.Info().Int("count", len(result.Movies)).Msg("Movies loaded")
	movies := make([]model.Movie, len(result.Movies))
	copy(movies, result.Movies)
	vm.movies.Set(movies)
	vm.loadState.Set(model.LoadStateSuccess)
}

// finish clears in-flight bookkeeping for gen
func (vm *MovieViewModel) finish(gen uint64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if gen != vm.generation {
		return
	}
	if vm.cancel != nil {
		vm.cancel()
		vm.cancel = nil
	}
	vm.inFlight = false
}

func (vm *MovieViewModel) isCurrent(gen uint64) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return gen == vm.generation && vm.inFlight
}
