package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Notifier shows a transient, non-interactive message to the user
type Notifier interface {
	Notify(message string)
}

// Toast shows messages as a popup near the bottom of the window that hides itself
type Toast struct {
	window   fyne.Window
	autoHide time.Duration
}

// NewToast creates a toast notifier for window
func NewToast(window fyne.Window) *Toast {
	return &Toast{window: window, autoHide: ToastAutoHide}
}

// Notify implements Notifier. Safe to call from any goroutine.
func (t *Toast) Notify(message string) {
	fyne.Do(func() {
		label := widget.NewLabel(message)
		label.Wrapping = fyne.TextWrapWord
		label.Alignment = fyne.TextAlignCenter

		c := t.window.Canvas()
		popup := widget.NewPopUp(container.NewPadded(label), c)

		width := ToastWidth
		if cw := c.Size().Width - 2*ToastMargin; cw > 0 && cw < width {
			width = cw
		}
		popup.Resize(fyne.NewSize(width, popup.MinSize().Height))

		size := popup.Size()
		x := (c.Size().Width - size.Width) / 2
		y := c.Size().Height - size.Height - ToastMargin
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
		popup.ShowAtPosition(fyne.NewPos(x, y))

		time.AfterFunc(t.autoHide, func() {
			fyne.Do(popup.Hide)
		})
	})
}
