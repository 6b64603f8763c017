package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-merger/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputNameEntry  *widget.Entry
	dividerCheck     *widget.Check
	validationSelect *widget.Select
	revealCheck      *widget.Check
	languageSelect   *widget.Select
}

// ShowSettingsDialog builds and shows the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.outputNameEntry = widget.NewEntry()
	sd.outputNameEntry.SetPlaceHolder(config.DefaultOutputFileName)

	sd.dividerCheck = widget.NewCheck(sd.localization.GetText(KeyDividerPage), nil)
	sd.revealCheck = widget.NewCheck(sd.localization.GetText(KeyRevealOnComplete), nil)

	validationOptions := []string{}
	for _, mode := range sd.settings.GetValidationModeOptions() {
		validationOptions = append(validationOptions, string(mode))
	}
	sd.validationSelect = widget.NewSelect(validationOptions, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(sd.localization.GetText(KeyOutputFileName), sd.outputNameEntry),
		widget.NewFormItem(sd.localization.GetText(KeyValidationMode), sd.validationSelect),
		widget.NewFormItem(sd.localization.GetText(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(
		form,
		widget.NewSeparator(),
		sd.dividerCheck,
		sd.revealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputNameEntry.SetText(sd.settings.GetOutputFileName())
	sd.dividerCheck.SetChecked(sd.settings.GetDividerPage())
	sd.validationSelect.SetSelected(string(sd.settings.GetValidationMode()))
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetOutputFileName(sd.outputNameEntry.Text)
	sd.settings.SetDividerPage(sd.dividerCheck.Checked)
	sd.settings.SetRevealOnComplete(sd.revealCheck.Checked)

	if sd.validationSelect.Selected != "" {
		sd.settings.SetValidationMode(config.ValidationMode(sd.validationSelect.Selected))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
