package model

// Package model defines the domain data used across the app: movie records,
// the outcome of a catalog fetch, and the screen load state. Values are plain
// structs so they can be handed to the UI without copying concerns.
