package merge

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindUnknown, "unknown"},
		{KindNoFilesSelected, "no files selected"},
		{KindEngineUnavailable, "engine unavailable"},
		{KindInvalidInput, "invalid input file"},
		{KindWriteFailure, "write failure"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.kind.String())
	}
}

func TestMergeError_Error(t *testing.T) {
	withPath := &MergeError{Kind: KindInvalidInput, Path: "/a.pdf", Err: errors.New("bad header")}
	assert.Equal(t, "invalid input file: /a.pdf: bad header", withPath.Error())

	withoutPath := &MergeError{Kind: KindWriteFailure, Err: errors.New("disk full")}
	assert.Equal(t, "write failure: disk full", withoutPath.Error())
}

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("merge into out.pdf: %w", &MergeError{Kind: KindWriteFailure, Err: cause})

	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(cause))
	assert.Equal(t, KindNoFilesSelected, KindOf(ErrNoFilesSelected))
	assert.Equal(t, KindEngineUnavailable, KindOf(ErrEngineUnavailable))
	assert.Equal(t, KindWriteFailure, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestClassify(t *testing.T) {
	typed := &MergeError{Kind: KindInvalidInput, Err: errors.New("x")}
	assert.Same(t, typed, classify(typed))

	assert.Equal(t, KindEngineUnavailable, classify(ErrEngineUnavailable).Kind)
	assert.Equal(t, KindUnknown, classify(errors.New("anything")).Kind)
}
