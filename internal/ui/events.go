package ui

import (
	"fyne.io/fyne/v2"
)

// FileSource tells where a batch of candidate paths came from
type FileSource int

const (
	SourceDialog FileSource = iota
	SourceDrop
)

// String returns a short label used in logs
func (fs FileSource) String() string {
	switch fs {
	case SourceDialog:
		return "dialog"
	case SourceDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// FilesEvent carries candidate local paths picked or dropped by the user
type FilesEvent struct {
	Source FileSource
	Paths  []string
}

// FilesHandler receives file events
type FilesHandler func(FilesEvent)

// FileEvents dispatches file events to handlers in registration order
type FileEvents struct {
	handlers []FilesHandler
}

// NewFileEvents creates an empty dispatcher
func NewFileEvents() *FileEvents {
	return &FileEvents{}
}

// Register adds a handler; nil handlers are ignored
func (e *FileEvents) Register(handler FilesHandler) {
	if handler == nil {
		return
	}
	e.handlers = append(e.handlers, handler)
}

// Emit delivers event to every registered handler
func (e *FileEvents) Emit(event FilesEvent) {
	for _, handler := range e.handlers {
		handler(event)
	}
}

// LocalPath returns the filesystem path of uri, or "" for non-file URIs
func LocalPath(uri fyne.URI) string {
	if uri == nil || uri.Scheme() != "file" {
		return ""
	}
	return uri.Path()
}

// LocalPaths converts dropped URIs to local paths, keeping order.
// Non-file URIs become "" so the file set rejects them like any other non-PDF.
func LocalPaths(uris []fyne.URI) []string {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		paths = append(paths, LocalPath(uri))
	}
	return paths
}

// DropHandler returns a window drop callback that emits SourceDrop events
func DropHandler(events *FileEvents) func(fyne.Position, []fyne.URI) {
	return func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		events.Emit(FilesEvent{Source: SourceDrop, Paths: LocalPaths(uris)})
	}
}

// BindDrop registers the drop callback on window
func BindDrop(window fyne.Window, events *FileEvents) {
	window.SetOnDropped(DropHandler(events))
}
