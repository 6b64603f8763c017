package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/pdf-merger/internal/config"
)

func TestSettingsDialog_SaveAppliesValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.loadCurrentSettings()

	assert.Equal(t, config.DefaultOutputFileName, sd.outputNameEntry.Text)

	sd.outputNameEntry.SetText("book")
	sd.dividerCheck.SetChecked(true)
	sd.revealCheck.SetChecked(true)
	sd.validationSelect.SetSelected(string(config.ValidationStrict))
	sd.languageSelect.SetSelected("pt")

	sd.onSave(true)

	assert.True(t, saved)
	assert.Equal(t, "book.pdf", settings.GetOutputFileName())
	assert.True(t, settings.GetDividerPage())
	assert.True(t, settings.GetRevealOnComplete())
	assert.Equal(t, config.ValidationStrict, settings.GetValidationMode())
	assert.Equal(t, "pt", settings.GetLanguage())
}

func TestSettingsDialog_CancelKeepsValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.loadCurrentSettings()

	sd.outputNameEntry.SetText("other")
	sd.onSave(false)

	assert.False(t, saved)
	assert.Equal(t, config.DefaultOutputFileName, settings.GetOutputFileName())
}
