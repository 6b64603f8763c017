package merge

import (
	"context"

	"github.com/ytget/pdf-merger/internal/model"
)

// Merger defines the interface for the merge service.
type Merger interface {
	SetUpdateCallback(func(*model.MergeTask))

	// Merge concatenates files in order into destination.
	// An empty destination is a cancelled save and returns (nil, nil).
	Merge(ctx context.Context, files []string, destination string) (*model.MergeTask, error)

	// PageCount returns the number of pages in a PDF file
	PageCount(path string) (int, error)

	// SetDividerPage configures whether a blank page separates merged inputs
	SetDividerPage(enabled bool)

	// SetValidationMode configures how strictly inputs are validated (strict/relaxed)
	SetValidationMode(mode string)
}

// Engine is the external PDF concatenation capability.
type Engine interface {
	Concatenate(ctx context.Context, req model.MergeRequest) error
	PageCount(path string) (int, error)
}

// configurableEngine is implemented by engines whose validation mode can change at runtime.
type configurableEngine interface {
	SetValidationMode(mode string)
}
