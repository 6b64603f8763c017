package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	IndexLabelFormat   = "%d."
)

// Layout sizing
const (
	RowMinWidth  float32 = 320
	IndexWidth   float32 = 32
	DialogWidth  float32 = 700
	DialogHeight float32 = 500

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 360
)

// File dialog filter
var (
	PDFFilterExtensions = []string{".pdf", ".PDF"}
)
