package ui

import (
	"fyne.io/fyne/v2"
)

// LoadIcon loads the window icon from path.
// The path comes from configuration and is handed to NewRootUI through Options.
func LoadIcon(path string) (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(path)
}
