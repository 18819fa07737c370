package viewmodel

// Package viewmodel holds the screen state that outlives individual renders:
// observable value slots and the MovieViewModel that fills them from a single
// catalog fetch per activation.
