package model

// Package model defines domain data structures used across the app: the
// ordered set of selected PDF files, merge requests, merge tasks and their
// status enum. The file set is owned by the UI thread and mirrored directly
// by the list widget.
