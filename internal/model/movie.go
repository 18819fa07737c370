package model

import "time"

// ReleaseDateLayout is the display layout for release dates (MM-DD-YYYY)
const ReleaseDateLayout = "01-02-2006"

// Movie represents a single catalog record shown as one list row
type Movie struct {
	Name        string
	ReleaseDate time.Time
	ArtworkURL  string // poster URI, loaded asynchronously by the UI
	Description string
}

// ReleaseDateString returns the release date formatted as MM-DD-YYYY in UTC
func (m Movie) ReleaseDateString() string {
	if m.ReleaseDate.IsZero() {
		return ""
	}
	return m.ReleaseDate.UTC().Format(ReleaseDateLayout)
}

// FetchResult is the outcome of one catalog request: either an ordered list of
// movies (possibly empty) or an error.
type FetchResult struct {
	Movies []Movie
	Err    error
}

// Failed returns true if the fetch ended with an error
func (r FetchResult) Failed() bool {
	return r.Err != nil
}

// Succeeded builds a successful result
func Succeeded(movies []Movie) FetchResult {
	if movies == nil {
		movies = []Movie{}
	}
	return FetchResult{Movies: movies}
}

// FailedWith builds a failed result
func FailedWith(err error) FetchResult {
	return FetchResult{Err: err}
}
