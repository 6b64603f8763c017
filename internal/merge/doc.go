package merge

// Package merge implements the merge pipeline built on top of pdfcpu
// (via github.com/pdfcpu/pdfcpu/pkg/api). The Service validates a merge
// request, drives it through its status phases, reports progress to the UI
// and classifies engine failures into typed error kinds.
