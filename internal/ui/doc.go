package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It turns dialog picks and window drops into typed file events, mirrors the
// selected file set in a list, and runs merges through the merge service.
// All UI strings are localized via Localization.
