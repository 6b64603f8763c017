package merge

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFilesSelected is returned when a merge is requested with an empty file set
	ErrNoFilesSelected = errors.New("no PDF files selected for merging")

	// ErrEngineUnavailable is returned when no PDF engine is configured
	ErrEngineUnavailable = errors.New("pdf engine unavailable")

	// ErrMergeInProgress is returned when a merge is requested while another one runs
	ErrMergeInProgress = errors.New("merge already in progress")
)

// ErrorKind classifies merge failures
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNoFilesSelected
	KindEngineUnavailable
	KindInvalidInput
	KindWriteFailure
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNoFilesSelected:
		return "no files selected"
	case KindEngineUnavailable:
		return "engine unavailable"
	case KindInvalidInput:
		return "invalid input file"
	case KindWriteFailure:
		return "write failure"
	default:
		return "unknown"
	}
}

// MergeError is a failed merge with its kind and, when known, the file involved
type MergeError struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Error returns the kind, the path if any, and the underlying message
func (e *MergeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *MergeError) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind carried by err, or KindUnknown
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ErrNoFilesSelected) {
		return KindNoFilesSelected
	}

	var mergeErr *MergeError
	if errors.As(err, &mergeErr) {
		return mergeErr.Kind
	}
	if errors.Is(err, ErrEngineUnavailable) {
		return KindEngineUnavailable
	}
	return KindUnknown
}

// classify wraps any engine error into a MergeError, keeping typed ones as they are
func classify(err error) *MergeError {
	var mergeErr *MergeError
	if errors.As(err, &mergeErr) {
		return mergeErr
	}
	if errors.Is(err, ErrEngineUnavailable) {
		return &MergeError{Kind: KindEngineUnavailable, Err: err}
	}
	return &MergeError{Kind: KindUnknown, Err: err}
}
