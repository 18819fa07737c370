package model

import "testing"

func TestLoadState_String(t *testing.T) {
	tests := []struct {
		state    LoadState
		expected string
	}{
		{LoadStateWaiting, "Waiting"},
		{LoadStateSuccess, "Success"},
		{LoadStateFailure, "Failure"},
		{LoadState(42), "Unknown"},
	}

	for _, test := range tests {
		result := test.state.String()
		if result != test.expected {
			t.Errorf("LoadState(%d).String() = %s, expected %s", int(test.state), result, test.expected)
		}
	}
}

func TestLoadState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    LoadState
		expected bool
	}{
		{LoadStateWaiting, false},
		{LoadStateSuccess, true},
		{LoadStateFailure, true},
	}

	for _, test := range tests {
		result := test.state.IsTerminal()
		if result != test.expected {
			t.Errorf("LoadState(%s).IsTerminal() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestLoadState_ZeroValueIsWaiting(t *testing.T) {
	var state LoadState
	if state != LoadStateWaiting {
		t.Errorf("Expected zero LoadState to be Waiting, got %s", state)
	}
}
