package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "moviefinder.png"
)

// LoadAppIcon loads the app icon from file path
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// ArtworkPlaceholder is shown until a poster loads, and kept if it never does
func ArtworkPlaceholder() fyne.Resource {
	return theme.FileImageIcon()
}
