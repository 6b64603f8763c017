package model

import "testing"

func TestMergeStatus_String(t *testing.T) {
	tests := []struct {
		status   MergeStatus
		expected string
	}{
		{MergeStatusIdle, "Idle"},
		{MergeStatusValidating, "Validating"},
		{MergeStatusMerging, "Merging"},
		{MergeStatusSucceeded, "Succeeded"},
		{MergeStatusFailed, "Failed"},
	}

	for _, test := range tests {
		if result := test.status.String(); result != test.expected {
			t.Errorf("MergeStatus.String() = %s, expected %s", result, test.expected)
		}
	}
}

func TestMergeStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   MergeStatus
		expected bool
	}{
		{MergeStatusIdle, false},
		{MergeStatusValidating, true},
		{MergeStatusMerging, true},
		{MergeStatusSucceeded, false},
		{MergeStatusFailed, false},
	}

	for _, test := range tests {
		if result := test.status.IsActive(); result != test.expected {
			t.Errorf("MergeStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestMergeStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   MergeStatus
		expected bool
	}{
		{MergeStatusIdle, false},
		{MergeStatusValidating, false},
		{MergeStatusMerging, false},
		{MergeStatusSucceeded, true},
		{MergeStatusFailed, true},
	}

	for _, test := range tests {
		if result := test.status.IsFinished(); result != test.expected {
			t.Errorf("MergeStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}
