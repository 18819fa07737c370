package itunes

import (
	"fmt"
	"time"

	"github.com/wyre/moviefinder/internal/model"
)

// searchResponse is the body of GET /search. Results is a pointer so that a
// missing field can be told apart from an empty array.
type searchResponse struct {
	Results *[]trackRecord `json:"results"`
}

// trackRecord is one entry of the results array. Every field is required.
type trackRecord struct {
	TrackName        *string `json:"trackName"`
	ReleaseDate      *string `json:"releaseDate"`
	ArtworkURL100    *string `json:"artworkUrl100"`
	ShortDescription *string `json:"shortDescription"`
}

// toMovie validates the record and converts it into a model.Movie
func (r trackRecord) toMovie() (model.Movie, error) {
	switch {
	case r.TrackName == nil:
		return model.Movie{}, fmt.Errorf("%w: trackName", errMissingField)
	case r.ReleaseDate == nil:
		return model.Movie{}, fmt.Errorf("%w: releaseDate", errMissingField)
	case r.ArtworkURL100 == nil:
		return model.Movie{}, fmt.Errorf("%w: artworkUrl100", errMissingField)
	case r.ShortDescription == nil:
		return model.Movie{}, fmt.Errorf("%w: shortDescription", errMissingField)
	}

	released, err := time.Parse(time.RFC3339, *r.ReleaseDate)
	if err != nil {
		return model.Movie{}, fmt.Errorf("invalid releaseDate %q: %w", *r.ReleaseDate, err)
	}

	return model.Movie{
		Name:        *r.TrackName,
		ReleaseDate: released,
		ArtworkURL:  *r.ArtworkURL100,
		Description: *r.ShortDescription,
	}, nil
}

// movies converts all records, preserving server order
func (r searchResponse) movies() ([]model.Movie, error) {
	if r.Results == nil {
		return nil, errMissingResults
	}

	movies := make([]model.Movie, 0, len(*r.Results))
	for i, record := range *r.Results {
		movie, err := record.toMovie()
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		movies = append(movies, movie)
	}
	return movies, nil
}
