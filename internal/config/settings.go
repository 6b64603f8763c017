package config

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/pdf-merger/internal/platform"
)

// ValidationMode selects how strictly input PDFs are checked before merging
type ValidationMode string

const (
	ValidationStrict  ValidationMode = "strict"
	ValidationRelaxed ValidationMode = "relaxed"
)

// Settings keys for Fyne preferences
const (
	KeyLastDirectory    = "last_directory"
	KeyOutputFileName   = "output_file_name"
	KeyDividerPage      = "divider_page"
	KeyValidationMode   = "validation_mode"
	KeyLanguage         = "app_language"
	KeyRevealOnComplete = "reveal_on_complete"
	KeyIconPath         = "icon_path"
)

// Default values
const (
	DefaultOutputFileName   = "merged.pdf"
	DefaultDividerPage      = false
	DefaultValidationMode   = ValidationRelaxed
	DefaultLanguage         = "system"
	DefaultRevealOnComplete = false
	DefaultIconName         = "icon.png"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastDirectory returns the directory the open dialog starts in
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLastDirectory remembers the directory of the most recently added file
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetOutputFileName returns the file name suggested by the save dialog
func (s *Settings) GetOutputFileName() string {
	name := s.app.Preferences().String(KeyOutputFileName)
	if name == "" {
		return DefaultOutputFileName
	}
	return name
}

// SetOutputFileName sets the suggested output file name, forcing a .pdf extension
func (s *Settings) SetOutputFileName(name string) {
	name = strings.TrimSpace(filepath.Base(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = DefaultOutputFileName
	}
	s.app.Preferences().SetString(KeyOutputFileName, platform.EnsurePDFExtension(name))
}

// GetDividerPage returns whether a blank page is inserted between merged files
func (s *Settings) GetDividerPage() bool {
	return s.app.Preferences().BoolWithFallback(KeyDividerPage, DefaultDividerPage)
}

// SetDividerPage sets whether a blank page is inserted between merged files
func (s *Settings) SetDividerPage(enabled bool) {
	s.app.Preferences().SetBool(KeyDividerPage, enabled)
}

// GetValidationMode returns the configured validation mode
func (s *Settings) GetValidationMode() ValidationMode {
	mode := ValidationMode(s.app.Preferences().String(KeyValidationMode))
	switch mode {
	case ValidationStrict, ValidationRelaxed:
		return mode
	default:
		return DefaultValidationMode
	}
}

// SetValidationMode sets the validation mode; unknown values reset to the default
func (s *Settings) SetValidationMode(mode ValidationMode) {
	if mode != ValidationStrict && mode != ValidationRelaxed {
		mode = DefaultValidationMode
	}
	s.app.Preferences().SetString(KeyValidationMode, string(mode))
}

// GetValidationModeOptions returns available validation modes
func (s *Settings) GetValidationModeOptions() []ValidationMode {
	return []ValidationMode{ValidationRelaxed, ValidationStrict}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"it":     "Italiano",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetRevealOnComplete returns whether to reveal the merged file when done
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnComplete, DefaultRevealOnComplete)
}

// SetRevealOnComplete sets whether to reveal the merged file when done
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnComplete, reveal)
}

// GetIconPath returns the window icon path, defaulting to icon.png next to the executable
func (s *Settings) GetIconPath() string {
	path := s.app.Preferences().String(KeyIconPath)
	if path != "" {
		return path
	}
	dir, err := platform.ExecutableDir()
	if err != nil {
		return DefaultIconName
	}
	return filepath.Join(dir, DefaultIconName)
}

// SetIconPath overrides the window icon path
func (s *Settings) SetIconPath(path string) {
	s.app.Preferences().SetString(KeyIconPath, path)
}
