package model

// MergeStatus represents the phase of a single merge invocation
type MergeStatus string

const (
	// MergeStatusIdle means no merge is running
	MergeStatusIdle MergeStatus = "Idle"

	// MergeStatusValidating means inputs and destination are being checked
	MergeStatusValidating MergeStatus = "Validating"

	// MergeStatusMerging means the PDF engine is writing the output
	MergeStatusMerging MergeStatus = "Merging"

	// MergeStatusSucceeded means the merged file was written
	MergeStatusSucceeded MergeStatus = "Succeeded"

	// MergeStatusFailed means the merge stopped with an error
	MergeStatusFailed MergeStatus = "Failed"
)

// String returns the string representation of MergeStatus
func (ms MergeStatus) String() string {
	return string(ms)
}

// IsActive returns true while a merge is in progress
func (ms MergeStatus) IsActive() bool {
	return ms == MergeStatusValidating || ms == MergeStatusMerging
}

// IsFinished returns true if the merge reached a terminal state
func (ms MergeStatus) IsFinished() bool {
	return ms == MergeStatusSucceeded || ms == MergeStatusFailed
}
