package model

// LoadState represents the status of the screen's catalog fetch
type LoadState int

const (
	// LoadStateWaiting means the fetch has been started but has not completed
	LoadStateWaiting LoadState = iota

	// LoadStateSuccess means a decoded movie list arrived
	LoadStateSuccess

	// LoadStateFailure means the fetch failed (transport, status or decode error)
	LoadStateFailure
)

// String returns the string representation of LoadState
func (s LoadState) String() string {
	switch s {
	case LoadStateWaiting:
		return "Waiting"
	case LoadStateSuccess:
		return "Success"
	case LoadStateFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true if no further transition happens within the same activation
func (s LoadState) IsTerminal() bool {
	return s == LoadStateSuccess || s == LoadStateFailure
}
