package artwork

// Package artwork loads poster images for movie rows. Loads run in the
// background with a bound on parallel requests; decoded resources are kept in
// memory by URL so recycled list rows do not refetch. Failures are reported to
// the caller and never affect the screen load state.
