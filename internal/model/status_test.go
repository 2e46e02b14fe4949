package model

import "testing"

func TestBatchState_IsActive(t *testing.T) {
	tests := []struct {
		state    BatchState
		expected bool
	}{
		{BatchStateIdle, false},
		{BatchStateRunning, true},
		{BatchStatePaused, true},
		{BatchStateStopping, true},
		{BatchStateFinished, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("BatchState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
		if test.state.CanStart() == test.expected {
			t.Errorf("BatchState(%s).CanStart() should be the negation of IsActive()", test.state)
		}
	}
}

func TestBatchState_String(t *testing.T) {
	if BatchStatePaused.String() != "Paused" {
		t.Errorf("BatchState.String() = %s, expected Paused", BatchStatePaused.String())
	}
}
