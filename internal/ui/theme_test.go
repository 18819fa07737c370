package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestMovieTheme(t *testing.T) {
	th := NewMovieTheme()

	assert.Equal(t, float32(13), th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
	assert.NotNil(t, th.Color(theme.ColorNamePrimary, theme.VariantLight))
	assert.NotNil(t, th.Icon(theme.IconNameHome))
}

func TestMobileUI_DesktopSizes(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	m := NewMobileUI(app)
	assert.False(t, m.IsMobileDevice())
	assert.Equal(t, ArtworkSize, m.ArtworkSize().Width)
	assert.Equal(t, RowMinHeight, m.RowMinSize().Height)

	assert.False(t, NewMobileUI(nil).IsMobileDevice())
}

func TestToast_Notify(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := test.NewWindow(nil)
	defer window.Close()

	toast := NewToast(window)
	assert.NotPanics(t, func() {
		toast.Notify("Could not load movies")
	})
}
