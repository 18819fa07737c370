package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/wyre/moviefinder/internal/artwork"
	"github.com/wyre/moviefinder/internal/config"
	"github.com/wyre/moviefinder/internal/itunes"
	"github.com/wyre/moviefinder/internal/logging"
	"github.com/wyre/moviefinder/internal/ui"
	"github.com/wyre/moviefinder/internal/viewmodel"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.wyre.moviefinder"
	AppName = "Movie Finder"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	logger := logging.New(settings.GetLoggingConfig())
	logger.Info().Str("version", version).Msg("Movie Finder starting")

	myApp.Settings().SetTheme(ui.NewMovieTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logger.Debug().Err(err).Msg("App icon not found, using default")
	}

	// Initialize services
	client := itunes.NewClient(logger, itunes.WithUserAgent(fmt.Sprintf("moviefinder/%s", version)))
	artworkSvc := artwork.NewService(logger, artwork.DefaultMaxParallel)
	vm := viewmodel.NewMovieViewModel(client, logger)

	screen := ui.NewMovieScreen(myWindow, settings, vm, artworkSvc, logger)
	myWindow.SetOnClosed(screen.Deactivate)

	// Activation happens once the window is up
	myApp.Lifecycle().SetOnStarted(func() {
		screen.Activate(context.Background())
	})

	// Show and run
	myWindow.ShowAndRun()
}
