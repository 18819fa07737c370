package ui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/wyre/moviefinder/internal/artwork"
	"github.com/wyre/moviefinder/internal/model"
)

// MovieRow renders one movie: poster, title, release date and description
type MovieRow struct {
	widget.BaseWidget

	loader artwork.Loader
	mobile *MobileUI
	logger zerolog.Logger

	titleLabel       *widget.Label
	dateLabel        *widget.Label
	descriptionLabel *widget.Label
	artworkImage     *canvas.Image

	// mu guards the bound movie and the poster resource; rows are recycled
	// while artwork loads are still in flight
	mu     sync.Mutex
	movie  model.Movie
	poster fyne.Resource
}

// NewMovieRow creates an empty row; call Bind to show a movie
func NewMovieRow(loader artwork.Loader, mobile *MobileUI, logger zerolog.Logger) *MovieRow {
	r := &MovieRow{
		loader: loader,
		mobile: mobile,
		logger: logger,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

func (r *MovieRow) createUI() {
	r.titleLabel = widget.NewLabel("")
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.dateLabel = widget.NewLabel(DashPlaceholder)
	r.dateLabel.TextStyle = fyne.TextStyle{Italic: true}

	r.descriptionLabel = widget.NewLabel("")
	r.descriptionLabel.Wrapping = fyne.TextWrapWord
	r.descriptionLabel.Truncation = fyne.TextTruncateEllipsis

	r.artworkImage = canvas.NewImageFromResource(ArtworkPlaceholder())
	r.artworkImage.FillMode = canvas.ImageFillContain
	r.artworkImage.SetMinSize(r.mobile.ArtworkSize())
}

// CreateRenderer implements fyne.Widget
func (r *MovieRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewBorder(
		container.NewVBox(r.titleLabel, r.dateLabel),
		nil, nil, nil,
		r.descriptionLabel,
	)
	content := container.NewBorder(nil, nil, container.NewCenter(r.artworkImage), nil, text)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows tall enough for the poster
func (r *MovieRow) MinSize() fyne.Size {
	return r.BaseWidget.MinSize().Max(r.mobile.RowMinSize())
}

// Bind shows movie in the row and starts loading its poster. Posters that
// arrive for a previously bound movie are ignored.
func (r *MovieRow) Bind(ctx context.Context, movie model.Movie) {
	r.mu.Lock()
	r.movie = movie
	r.poster = nil
	r.mu.Unlock()

	r.titleLabel.SetText(movie.Name)
	date := movie.ReleaseDateString()
	if date == "" {
		date = DashPlaceholder
	}
	r.dateLabel.SetText(date)
	r.descriptionLabel.SetText(movie.Description)

	r.artworkImage.Resource = ArtworkPlaceholder()
	r.artworkImage.Refresh()

	if r.loader == nil || movie.ArtworkURL == "" {
		return
	}

	url := movie.ArtworkURL
	r.loader.LoadAsync(ctx, url, func(res fyne.Resource, err error) {
		if err != nil {
			// Poster failures leave the placeholder in place
			r.logger.Debug().Err(err).Str("movie", movie.Name).Msg("Keeping artwork placeholder")
			return
		}
		fyne.Do(func() {
			r.mu.Lock()
			if r.movie.ArtworkURL != url {
				r.mu.Unlock()
				return
			}
			r.poster = res
			r.mu.Unlock()

			r.artworkImage.Resource = res
			r.artworkImage.Refresh()
		})
	})
}

// Movie returns the bound movie
func (r *MovieRow) Movie() model.Movie {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.movie
}

// Poster returns the loaded poster, or nil while the placeholder is shown
func (r *MovieRow) Poster() fyne.Resource {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.poster
}

// Texts returns the title, date and description currently displayed
func (r *MovieRow) Texts() (title, date, description string) {
	return r.titleLabel.Text, r.dateLabel.Text, r.descriptionLabel.Text
}
