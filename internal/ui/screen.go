package ui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/wyre/moviefinder/internal/artwork"
	"github.com/wyre/moviefinder/internal/config"
	"github.com/wyre/moviefinder/internal/model"
	"github.com/wyre/moviefinder/internal/viewmodel"
)

// ScreenOption configures a MovieScreen
type ScreenOption func(*MovieScreen)

// WithNotifier replaces the default toast notifier
func WithNotifier(n Notifier) ScreenOption {
	return func(s *MovieScreen) {
		s.notifier = n
	}
}

// MovieScreen is the single screen of the app: a list of movies fed by the view model
type MovieScreen struct {
	window       fyne.Window
	vm           *viewmodel.MovieViewModel
	loader       artwork.Loader
	notifier     Notifier
	localization *Localization
	mobile       *MobileUI
	logger       zerolog.Logger

	list         *widget.List
	loadingBar   *widget.ProgressBarInfinite
	loadingLabel *widget.Label
	loadingPanel *fyne.Container
	emptyLabel   *widget.Label

	mu            sync.RWMutex
	movies        []model.Movie
	ctx           context.Context
	cancel        context.CancelFunc
	unsubscribers []func()
}

// NewMovieScreen creates the screen and sets it as the window content
func NewMovieScreen(
	window fyne.Window,
	settings *config.Settings,
	vm *viewmodel.MovieViewModel,
	loader artwork.Loader,
	logger zerolog.Logger,
	opts ...ScreenOption,
) *MovieScreen {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	s := &MovieScreen{
		window:       window,
		vm:           vm,
		loader:       loader,
		localization: localization,
		mobile:       NewMobileUI(fyne.CurrentApp()),
		logger:       logger.With().Str("component", "screen").Logger(),
	}
	s.notifier = NewToast(window)

	for _, opt := range opts {
		opt(s)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	s.setupUI()
	return s
}

// setupUI creates and arranges all UI components
func (s *MovieScreen) setupUI() {
	s.list = widget.NewList(
		s.RowCount,
		func() fyne.CanvasObject {
			return NewMovieRow(s.loader, s.mobile, s.logger)
		},
		s.updateRow,
	)

	s.loadingLabel = widget.NewLabel(s.localization.GetText(KeyLoading))
	s.loadingBar = widget.NewProgressBarInfinite()
	s.loadingPanel = container.NewVBox(s.loadingLabel, s.loadingBar)
	s.loadingPanel.Hide()

	s.emptyLabel = widget.NewLabel(s.localization.GetText(KeyNoMovies))
	s.emptyLabel.Alignment = fyne.TextAlignCenter
	s.emptyLabel.Hide()

	content := container.NewBorder(
		s.loadingPanel, // top
		nil,            // bottom
		nil,            // left
		nil,            // right
		container.NewStack(s.list, container.NewCenter(s.emptyLabel)),
	)

	s.window.SetContent(content)
}

// Activate subscribes to the view model and starts the fetch. The returned
// channel closes once the fetch outcome has been applied.
func (s *MovieScreen) Activate(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	if s.cancel != nil {
		screenCtx := s.ctx
		s.mu.Unlock()
		return s.vm.Activate(screenCtx)
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	screenCtx := s.ctx
	s.mu.Unlock()

	// Subscribe before the fetch starts so every write is observed in order.
	// The first delivery is the value left by an earlier activation.
	unsubMovies := s.vm.Movies().Subscribe(s.onMovies)

	initial := true
	unsubState := s.vm.LoadState().Subscribe(func(state model.LoadState) {
		replay := initial
		initial = false
		s.onLoadState(state, replay)
	})

	s.mu.Lock()
	s.unsubscribers = append(s.unsubscribers, unsubMovies, unsubState)
	s.mu.Unlock()

	s.logger.Debug().Msg("Screen activated")
	return s.vm.Activate(screenCtx)
}

// Deactivate stops observing the view model and drops any pending fetch
func (s *MovieScreen) Deactivate() {
	s.mu.Lock()
	unsubscribers := s.unsubscribers
	s.unsubscribers = nil
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	for _, unsubscribe := range unsubscribers {
		unsubscribe()
	}
	s.vm.Deactivate()
	if cancel != nil {
		cancel()
	}

	s.logger.Debug().Msg("Screen deactivated")
}

// RowCount returns the number of rendered rows
func (s *MovieScreen) RowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

// MovieAt returns the movie rendered at row id
func (s *MovieScreen) MovieAt(id int) (model.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 0 || id >= len(s.movies) {
		return model.Movie{}, false
	}
	return s.movies[id], true
}

// List returns the list widget
func (s *MovieScreen) List() *widget.List {
	return s.list
}

// updateRow binds the movie at id into a recycled row
func (s *MovieScreen) updateRow(id widget.ListItemID, item fyne.CanvasObject) {
	movie, ok := s.MovieAt(id)
	if !ok {
		return
	}
	row, ok := item.(*MovieRow)
	if !ok {
		return
	}
	row.Bind(s.context(), movie)
}

// onMovies replaces the rendered list
func (s *MovieScreen) onMovies(movies []model.Movie) {
	s.mu.Lock()
	s.movies = movies
	s.mu.Unlock()

	fyne.Do(func() {
		s.list.UnselectAll()
		s.list.Refresh()
	})

	if s.loader == nil || len(movies) == 0 {
		return
	}

	urls := make([]string, 0, len(movies))
	for _, movie := range movies {
		urls = append(urls, movie.ArtworkURL)
	}
	ctx := s.context()
	go func() {
		if err := s.loader.Prefetch(ctx, urls); err != nil {
			s.logger.Debug().Err(err).Msg("Artwork prefetch stopped")
		}
	}()
}

// onLoadState updates the loading panel and reports failures. replay is true
// for the value delivered on subscription, which belongs to an earlier activation.
func (s *MovieScreen) onLoadState(state model.LoadState, replay bool) {
	count := s.RowCount()
	fyne.Do(func() {
		switch state {
		case model.LoadStateWaiting:
			s.loadingPanel.Show()
			s.emptyLabel.Hide()
		case model.LoadStateSuccess:
			s.loadingPanel.Hide()
			if count == 0 {
				s.emptyLabel.Show()
			} else {
				s.emptyLabel.Hide()
			}
		case model.LoadStateFailure:
			s.loadingPanel.Hide()
			s.emptyLabel.Hide()
		}
	})

	if state == model.LoadStateFailure && !replay {
		s.logger.Info().Msg("Showing fetch failure notice")
		s.notifier.Notify(s.localization.GetText(KeyFetchFailure))
	}
}

func (s *MovieScreen) context() context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}
