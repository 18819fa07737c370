package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific sizing for the movie list
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	if m.app == nil || m.app.Driver() == nil {
		return false
	}
	return m.app.Driver().Device().IsMobile()
}

// ArtworkSize returns the poster size for a row
func (m *MobileUI) ArtworkSize() fyne.Size {
	if m.IsMobileDevice() {
		return fyne.NewSize(MobileArtworkSize, MobileArtworkSize)
	}
	return fyne.NewSize(ArtworkSize, ArtworkSize)
}

// RowMinSize returns the minimum size of a movie row
func (m *MobileUI) RowMinSize() fyne.Size {
	if m.IsMobileDevice() {
		return fyne.NewSize(MobileRowMinWidth, MobileRowMinHeight)
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}
