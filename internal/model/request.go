package model

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MergeRequest is the ordered list of inputs and the output path handed to the PDF engine
type MergeRequest struct {
	ID          string
	Files       []string
	Destination string
	DividerPage bool // insert a blank page between inputs
}

// NewMergeRequest snapshots files so later FileSet changes do not leak into a running merge
func NewMergeRequest(files []string, destination string) MergeRequest {
	snapshot := make([]string, len(files))
	copy(snapshot, files)

	return MergeRequest{
		ID:          uuid.NewString(),
		Files:       snapshot,
		Destination: destination,
	}
}

// MergeTask records one merge invocation for the UI
type MergeTask struct {
	Request    MergeRequest
	Status     MergeStatus
	LastError  string // last error message if any
	PageCount  int    // pages in the merged output, 0 if unknown
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewMergeTask creates a task in the validating phase
func NewMergeTask(req MergeRequest) *MergeTask {
	return &MergeTask{
		Request:   req,
		Status:    MergeStatusValidating,
		StartedAt: time.Now(),
	}
}

// Destination returns the output path of the task
func (mt *MergeTask) Destination() string {
	return mt.Request.Destination
}

// DisplayName returns the output file name without directory
func (mt *MergeTask) DisplayName() string {
	if mt.Request.Destination == "" {
		return ""
	}
	return filepath.Base(mt.Request.Destination)
}

// Duration returns how long the merge ran, or zero while it is still running
func (mt *MergeTask) Duration() time.Duration {
	if mt.FinishedAt.IsZero() {
		return 0
	}
	return mt.FinishedAt.Sub(mt.StartedAt)
}
