package ui

// Package ui contains the Fyne-based movie screen. It subscribes to the view
// model's observable state, renders one MovieRow per movie, loads poster art in
// the background and shows a toast when the catalog fetch fails. All UI strings
// are localized via Localization.
