package model

import "strings"

// PDFExtension is the only extension accepted into a FileSet
const PDFExtension = ".pdf"

// RejectReason explains why AddFiles did not store a candidate path
type RejectReason string

const (
	// RejectNotPDF means the path does not end in .pdf
	RejectNotPDF RejectReason = "not_pdf"

	// RejectDuplicate means the exact same path string is already in the set
	RejectDuplicate RejectReason = "duplicate"
)

// Rejection pairs a dropped candidate with the reason it was dropped
type Rejection struct {
	Path   string
	Reason RejectReason
}

// AddResult reports what AddFiles did with each candidate.
// Rejections are informational; they are never errors.
type AddResult struct {
	Accepted []string
	Rejected []Rejection
}

// FileSet is the ordered, deduplicated list of PDF paths selected for merging.
// Order of insertion is the merge order. Paths are compared as exact strings,
// so "a.pdf" and "A.PDF" are different entries.
//
// A FileSet is owned by the UI event thread and is not safe for concurrent use.
type FileSet struct {
	paths []string
	index map[string]struct{}
}

// NewFileSet creates an empty file set
func NewFileSet() *FileSet {
	return &FileSet{
		index: make(map[string]struct{}),
	}
}

// IsPDFPath reports whether path ends with .pdf, ignoring case
func IsPDFPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), PDFExtension)
}

// AddFiles appends every candidate that is a PDF path and not already present.
// Candidates are processed in order, so accepted paths keep their input order.
func (fs *FileSet) AddFiles(candidates []string) AddResult {
	var result AddResult

	for _, path := range candidates {
		if !IsPDFPath(path) {
			result.Rejected = append(result.Rejected, Rejection{Path: path, Reason: RejectNotPDF})
			continue
		}
		if _, exists := fs.index[path]; exists {
			result.Rejected = append(result.Rejected, Rejection{Path: path, Reason: RejectDuplicate})
			continue
		}

		fs.index[path] = struct{}{}
		fs.paths = append(fs.paths, path)
		result.Accepted = append(result.Accepted, path)
	}

	return result
}

// Len returns the number of paths in the set
func (fs *FileSet) Len() int {
	return len(fs.paths)
}

// At returns the path at position i, or "" when i is out of range
func (fs *FileSet) At(i int) string {
	if i < 0 || i >= len(fs.paths) {
		return ""
	}
	return fs.paths[i]
}

// Contains reports whether the exact path string is in the set
func (fs *FileSet) Contains(path string) bool {
	_, exists := fs.index[path]
	return exists
}

// Files returns a copy of the paths in merge order
func (fs *FileSet) Files() []string {
	files := make([]string, len(fs.paths))
	copy(files, fs.paths)
	return files
}
