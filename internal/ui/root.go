package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-merger/internal/config"
	"github.com/ytget/pdf-merger/internal/merge"
	"github.com/ytget/pdf-merger/internal/model"
	"github.com/ytget/pdf-merger/internal/platform"
)

// Options carries startup resources for the main window
type Options struct {
	// Icon is applied to the window and the app when not nil
	Icon fyne.Resource
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	fileSet      *model.FileSet
	mergeSvc     merge.Merger
	settings     *config.Settings
	localization *Localization
	events       *FileEvents

	fileList    *widget.List
	placeholder *canvas.Text
	countLabel  *widget.Label
	addBtn      *widget.Button
	mergeBtn    *widget.Button

	// Page counts and sizes, filled in the background
	details      map[string]FileDetails
	detailsMutex sync.Mutex

	// runAsync starts background work; tests swap it for a synchronous call
	runAsync func(func())

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, mergeSvc merge.Merger, opts Options) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		fileSet:      model.NewFileSet(),
		mergeSvc:     mergeSvc,
		settings:     settings,
		localization: localization,
		events:       NewFileEvents(),
		details:      make(map[string]FileDetails),
		runAsync:     func(f func()) { go f() },
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	if opts.Icon != nil {
		window.SetIcon(opts.Icon)
		app.SetIcon(opts.Icon)
	}

	ui.mergeSvc.SetUpdateCallback(ui.onMergeUpdate)
	ui.mergeSvc.SetDividerPage(settings.GetDividerPage())
	ui.mergeSvc.SetValidationMode(string(settings.GetValidationMode()))

	// Dialog picks and window drops both end in the file set
	ui.events.Register(ui.onFilesEvent)
	BindDrop(window, ui.events)

	ui.setupUI()
	log.Printf("RootUI initialized with merge service: %v", ui.mergeSvc != nil)
	return ui
}

// Events exposes the file event dispatcher so callers can add handlers
func (ui *RootUI) Events() *FileEvents {
	return ui.events
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, ui.notificationSpinner, nil, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.fileList = widget.NewList(
		func() int {
			return ui.fileSet.Len()
		},
		func() fyne.CanvasObject {
			return NewFileRow(ui.localization)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			row, ok := item.(*FileRow)
			if !ok {
				return
			}
			path := ui.fileSet.At(id)
			row.Update(id, path, ui.detailsFor(path))
		},
	)

	ui.fileList.OnSelected = ui.onFileSelected

	ui.placeholder = canvas.NewText(ui.localization.GetText(KeyDropHere), theme.Color(theme.ColorNamePlaceHolder))
	ui.placeholder.Alignment = fyne.TextAlignCenter
	ui.placeholder.TextSize = theme.TextSubHeadingSize()

	listArea := container.NewStack(ui.fileList, container.NewCenter(ui.placeholder))

	ui.countLabel = widget.NewLabel("")
	ui.countLabel.Alignment = fyne.TextAlignCenter

	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddFiles), ui.onAddClick)
	ui.mergeBtn = widget.NewButton(ui.localization.GetText(KeyMergePDFs), ui.onMergeClick)
	ui.mergeBtn.Importance = widget.HighImportance

	bottomPanel := container.NewVBox(ui.countLabel, ui.addBtn, ui.mergeBtn)

	content := container.NewBorder(ui.notificationContainer, bottomPanel, nil, nil, listArea)
	ui.window.SetContent(content)

	ui.refreshList()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	addItem := fyne.NewMenuItem(ui.localization.GetText(KeyAddFiles), ui.onAddClick)
	addFolderItem := fyne.NewMenuItem(ui.localization.GetText(KeyAddFolder), ui.onAddFolderClick)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), addItem, addFolderItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.placeholder.Text = ui.localization.GetText(KeyDropHere)
	ui.placeholder.Refresh()
	ui.addBtn.SetText(ui.localization.GetText(KeyAddFiles))
	ui.mergeBtn.SetText(ui.localization.GetText(KeyMergePDFs))

	ui.refreshList()
}

// refreshList redraws rows and toggles the empty placeholder
func (ui *RootUI) refreshList() {
	count := ui.fileSet.Len()
	if count == 0 {
		ui.placeholder.Show()
	} else {
		ui.placeholder.Hide()
	}
	ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyFileCount), count))
	ui.fileList.Refresh()
}

// onFilesEvent feeds picked or dropped paths into the file set
func (ui *RootUI) onFilesEvent(event FilesEvent) {
	result := ui.fileSet.AddFiles(event.Paths)
	log.Printf("files from %s: %d accepted, %d skipped", event.Source, len(result.Accepted), len(result.Rejected))

	if n := len(result.Accepted); n > 0 {
		ui.settings.SetLastDirectory(filepath.Dir(result.Accepted[n-1]))
		accepted := result.Accepted
		ui.runAsync(func() { ui.loadDetails(accepted) })
	}

	ui.refreshList()

	if len(result.Rejected) > 0 {
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeySkippedFiles), len(result.Rejected)), false)
	} else {
		ui.hideNotification()
	}
}

// loadDetails reads page counts and sizes for new rows off the event thread
func (ui *RootUI) loadDetails(paths []string) {
	for _, path := range paths {
		var details FileDetails
		if info, err := os.Stat(path); err == nil {
			details.Size = info.Size()
		}
		if pages, err := ui.mergeSvc.PageCount(path); err == nil {
			details.Pages = pages
		} else {
			log.Printf("page count for %s: %v", path, err)
		}

		ui.detailsMutex.Lock()
		ui.details[path] = details
		ui.detailsMutex.Unlock()
	}

	fyne.Do(func() {
		ui.fileList.Refresh()
	})
}

// detailsFor returns what is known about path so far
func (ui *RootUI) detailsFor(path string) FileDetails {
	ui.detailsMutex.Lock()
	defer ui.detailsMutex.Unlock()
	return ui.details[path]
}

// onAddClick opens a PDF picker starting in the last used directory
func (ui *RootUI) onAddClick() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("open dialog error: %v", err)
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := LocalPath(reader.URI())
		if closeErr := reader.Close(); closeErr != nil {
			log.Printf("close picked file %s: %v", path, closeErr)
		}
		ui.events.Emit(FilesEvent{Source: SourceDialog, Paths: []string{path}})
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(PDFFilterExtensions))
	ui.setDialogLocation(fileDialog)
	fileDialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	fileDialog.Show()
}

// onAddFolderClick adds every PDF in a picked folder, in name order.
// Fyne's open dialog selects a single file, so this is the multi-file pick.
func (ui *RootUI) onAddFolderClick() {
	folderDialog := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("folder dialog error: %v", err)
			dialog.ShowError(err, ui.window)
			return
		}
		if dir == nil {
			return
		}
		ui.addFolder(LocalPath(dir))
	}, ui.window)

	ui.setDialogLocation(folderDialog)
	folderDialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	folderDialog.Show()
}

// addFolder emits one dialog event with the PDFs found directly in dir
func (ui *RootUI) addFolder(dir string) {
	paths, err := platform.ListPDFFiles(dir)
	if err != nil {
		log.Printf("list folder %s: %v", dir, err)
		dialog.ShowError(err, ui.window)
		return
	}
	if len(paths) == 0 {
		ui.showNotification(ui.localization.GetText(KeyNoPDFsInFolder), false)
		return
	}
	ui.events.Emit(FilesEvent{Source: SourceDialog, Paths: paths})
}

// setDialogLocation points d at the last used directory when it is listable
func (ui *RootUI) setDialogLocation(d *dialog.FileDialog) {
	dir := ui.settings.GetLastDirectory()
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		log.Printf("dialog location %s: %v", dir, err)
		return
	}
	d.SetLocation(lister)
}

// onMergeClick asks for a destination and merges the current list into it
func (ui *RootUI) onMergeClick() {
	if ui.fileSet.Len() == 0 {
		ui.showNoFiles()
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("save dialog error: %v", err)
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			ui.startMerge("")
			return
		}

		chosen := LocalPath(writer.URI())
		if closeErr := writer.Close(); closeErr != nil {
			log.Printf("close destination %s: %v", chosen, closeErr)
		}
		ui.onSaveChosen(chosen)
	}, ui.window)

	saveDialog.SetFilter(storage.NewExtensionFileFilter(PDFFilterExtensions))
	saveDialog.SetFileName(ui.settings.GetOutputFileName())
	ui.setDialogLocation(saveDialog)
	saveDialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	saveDialog.Show()
}

// onSaveChosen merges into the path picked in the save dialog.
// The dialog has already created or emptied chosen by the time this runs.
func (ui *RootUI) onSaveChosen(chosen string) {
	destination := platform.EnsurePDFExtension(chosen)
	if destination != chosen && !ui.isInput(chosen) {
		// The dialog created the name without extension
		if rmErr := platform.RemoveIfEmpty(chosen); rmErr != nil {
			log.Printf("remove placeholder %s: %v", chosen, rmErr)
		}
	}

	if ui.isInput(destination) {
		log.Printf("merge refused: output %s is one of the inputs", destination)
		// Show the emptied size on the row
		ui.runAsync(func() { ui.loadDetails([]string{destination}) })
		dialog.ShowError(fmt.Errorf(ui.localization.GetText(KeyOutputIsInput), destination), ui.window)
		return
	}
	ui.startMerge(destination)
}

// isInput reports whether path names a file already in the list
func (ui *RootUI) isInput(path string) bool {
	if path == "" {
		return false
	}
	if ui.fileSet.Contains(path) {
		return true
	}
	clean := filepath.Clean(path)
	for _, f := range ui.fileSet.Files() {
		if filepath.Clean(f) == clean {
			return true
		}
	}
	return false
}

// startMerge runs the merge off the event thread and applies the result with fyne.Do
func (ui *RootUI) startMerge(destination string) {
	files := ui.fileSet.Files()

	ui.mergeSvc.SetDividerPage(ui.settings.GetDividerPage())
	ui.mergeSvc.SetValidationMode(string(ui.settings.GetValidationMode()))

	if destination == "" {
		task, err := ui.mergeSvc.Merge(context.Background(), files, destination)
		ui.handleMergeResult(task, destination, err)
		return
	}

	log.Printf("merge requested: %d files into %s", len(files), destination)
	ui.setBusy(true)
	ui.showNotification(ui.localization.GetText(KeyMerging), true)

	ui.runAsync(func() {
		task, err := ui.mergeSvc.Merge(context.Background(), files, destination)
		fyne.Do(func() {
			ui.handleMergeResult(task, destination, err)
		})
	})
}

// handleMergeResult shows the outcome of one merge; it runs on the event thread
func (ui *RootUI) handleMergeResult(task *model.MergeTask, destination string, err error) {
	ui.setBusy(false)
	ui.hideNotification()

	switch {
	case errors.Is(err, merge.ErrNoFilesSelected):
		ui.showNoFiles()
	case err != nil:
		log.Printf("merge failed (%s): %v", merge.KindOf(err), err)
		if !ui.isInput(destination) {
			if rmErr := platform.RemoveIfEmpty(destination); rmErr != nil {
				log.Printf("remove empty destination %s: %v", destination, rmErr)
			}
		}
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyMergeError), err), ui.window)
	case task == nil:
		log.Printf("merge cancelled: no destination chosen")
	default:
		log.Printf("merge %s succeeded: %s (%d pages) in %v", task.Request.ID, task.Destination(), task.PageCount, task.Duration())
		dialog.ShowInformation(
			ui.localization.GetText(KeySuccessTitle),
			fmt.Sprintf(ui.localization.GetText(KeyMergeSuccess), task.Destination()),
			ui.window,
		)
		ui.sendCompletionNotification(task)
		if ui.settings.GetRevealOnComplete() {
			ui.onRevealFile(task.Destination())
		}
	}
}

// showNoFiles tells the user there is nothing to merge
func (ui *RootUI) showNoFiles() {
	dialog.ShowInformation(
		ui.localization.GetText(KeyNoFilesTitle),
		ui.localization.GetText(KeyNoFilesMessage),
		ui.window,
	)
}

// setBusy disables inputs while a merge runs
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.addBtn.Disable()
		ui.mergeBtn.Disable()
		return
	}
	ui.addBtn.Enable()
	ui.mergeBtn.Enable()
}

// onMergeUpdate logs service transitions; it may be called from the merge goroutine
func (ui *RootUI) onMergeUpdate(task *model.MergeTask) {
	if task == nil {
		return
	}
	log.Printf("merge %s: %s", task.Request.ID, task.Status)
	if task.Status == model.MergeStatusMerging {
		fyne.Do(func() {
			ui.showNotification(ui.localization.GetText(KeyMerging), true)
		})
	}
}

// sendCompletionNotification sends a system notification for a finished merge
func (ui *RootUI) sendCompletionNotification(task *model.MergeTask) {
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyMergeCompleted),
		Content: task.DisplayName(),
	})
}

// onFileSelected opens the picked row in the default PDF viewer
func (ui *RootUI) onFileSelected(id widget.ListItemID) {
	ui.fileList.Unselect(id)

	path := ui.fileSet.At(id)
	if path == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("open %s: %v", path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onRevealFile opens the file manager at path
func (ui *RootUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("reveal %s: %v", path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// showNotification displays a message in the notification panel above the list.
// When spinning is true, a spinner is shown to indicate background activity.
// Must be called on the event thread.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()

		ui.mergeSvc.SetDividerPage(ui.settings.GetDividerPage())
		ui.mergeSvc.SetValidationMode(string(ui.settings.GetValidationMode()))

		dialog.ShowInformation(
			ui.localization.GetText(KeySettings),
			ui.localization.GetText(KeySettingsSaved),
			ui.window,
		)
	})
}
