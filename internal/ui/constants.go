package ui

import "time"

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Text fragments
const (
	DashPlaceholder = "—"
)

// Layout sizing (MovieRow / list)
const (
	ArtworkSize  float32 = 100
	RowMinWidth  float32 = 360
	RowMinHeight float32 = 110

	// Mobile-specific sizing
	MobileArtworkSize  float32 = 120
	MobileRowMinWidth  float32 = 300
	MobileRowMinHeight float32 = 130
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Window defaults
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 760
)
