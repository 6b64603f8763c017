package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/pdf-merger/internal/config"
	"github.com/ytget/pdf-merger/internal/merge"
	"github.com/ytget/pdf-merger/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.pdf-merger"
	AppName = "PDF Merger"

	WindowWidth  = 480
	WindowHeight = 400
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewMergerTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	engine := merge.NewPDFCPUEngine(string(settings.GetValidationMode()))
	mergeSvc := merge.NewService(engine)
	mergeSvc.SetDividerPage(settings.GetDividerPage())

	// The icon is optional; a missing file only costs the window decoration
	var opts ui.Options
	iconPath := settings.GetIconPath()
	if icon, err := ui.LoadIcon(iconPath); err != nil {
		log.Printf("failed to load icon %s: %v", iconPath, err)
	} else {
		opts.Icon = icon
	}

	ui.NewRootUI(myWindow, myApp, mergeSvc, opts)

	myWindow.ShowAndRun()
}
