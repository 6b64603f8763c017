package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLastDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetLastDirectory()
	if filepath.Base(dir) != "Downloads" {
		t.Errorf("Expected default directory to end with Downloads, got %s", dir)
	}

	// Test setting custom value
	customDir := "/custom/pdfs"
	settings.SetLastDirectory(customDir)

	if retrieved := settings.GetLastDirectory(); retrieved != customDir {
		t.Errorf("Expected last directory %s, got %s", customDir, retrieved)
	}
}

func TestOutputFileName(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if name := settings.GetOutputFileName(); name != DefaultOutputFileName {
		t.Errorf("Expected default output name %s, got %s", DefaultOutputFileName, name)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"report.pdf", "report.pdf"},
		{"report", "report.pdf"},
		{"REPORT.PDF", "REPORT.PDF"},
		{"  spaced  ", "spaced.pdf"},
		{"/some/dir/out.pdf", "out.pdf"},
		{"", DefaultOutputFileName},
	}

	for _, test := range tests {
		settings.SetOutputFileName(test.input)
		if name := settings.GetOutputFileName(); name != test.expected {
			t.Errorf("SetOutputFileName(%q): expected %s, got %s", test.input, test.expected, name)
		}
	}
}

func TestDividerPage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetDividerPage() != DefaultDividerPage {
		t.Errorf("Expected default divider page %v", DefaultDividerPage)
	}

	settings.SetDividerPage(true)
	if !settings.GetDividerPage() {
		t.Error("Expected divider page to be enabled")
	}
}

func TestValidationMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mode := settings.GetValidationMode(); mode != DefaultValidationMode {
		t.Errorf("Expected default validation mode %s, got %s", DefaultValidationMode, mode)
	}

	settings.SetValidationMode(ValidationStrict)
	if mode := settings.GetValidationMode(); mode != ValidationStrict {
		t.Errorf("Expected validation mode %s, got %s", ValidationStrict, mode)
	}

	// Unknown values fall back to the default
	settings.SetValidationMode("paranoid")
	if mode := settings.GetValidationMode(); mode != DefaultValidationMode {
		t.Errorf("Expected validation mode %s after invalid value, got %s", DefaultValidationMode, mode)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("it")
	if lang := settings.GetLanguage(); lang != "it" {
		t.Errorf("Expected language 'it', got %s", lang)
	}
}

func TestRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRevealOnComplete() != DefaultRevealOnComplete {
		t.Errorf("Expected default reveal on complete %v", DefaultRevealOnComplete)
	}

	settings.SetRevealOnComplete(true)
	if !settings.GetRevealOnComplete() {
		t.Error("Expected reveal on complete to be enabled")
	}
}

func TestIconPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if base := filepath.Base(settings.GetIconPath()); base != DefaultIconName {
		t.Errorf("Expected default icon %s, got %s", DefaultIconName, base)
	}

	settings.SetIconPath("/opt/pdf-merger/logo.png")
	if path := settings.GetIconPath(); path != "/opt/pdf-merger/logo.png" {
		t.Errorf("Expected custom icon path, got %s", path)
	}
}

func TestGetValidationModeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetValidationModeOptions()
	expected := []ValidationMode{ValidationRelaxed, ValidationStrict}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d validation options, got %d", len(expected), len(options))
	}
	for i, mode := range expected {
		if options[i] != mode {
			t.Errorf("Validation option %d: expected %s, got %s", i, mode, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "it", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
