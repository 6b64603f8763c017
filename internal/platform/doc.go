package platform

// Package platform contains OS/platform integration: user directories,
// path helpers for PDF outputs, and revealing or opening files with the
// desktop's own tools.
