package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-merger/internal/platform"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// FileDetails holds what is known about a listed file; zero values mean unknown
type FileDetails struct {
	Pages int
	Size  int64
}

// FileRow is one entry of the file list: position, name and details
type FileRow struct {
	widget.BaseWidget

	localization *Localization

	separator   *widget.Separator
	indexLabel  *widget.Label
	nameLabel   *widget.Label
	detailLabel *widget.Label
}

// NewFileRow creates an empty file row
func NewFileRow(localization *Localization) *FileRow {
	fr := &FileRow{localization: localization}
	fr.ExtendBaseWidget(fr)

	fr.separator = widget.NewSeparator()
	fr.separator.Hide()

	fr.indexLabel = widget.NewLabel("")
	fr.indexLabel.Alignment = fyne.TextAlignTrailing

	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	fr.detailLabel = widget.NewLabel("")
	fr.detailLabel.SizeName = theme.SizeNameCaptionText
	fr.detailLabel.Truncation = fyne.TextTruncateEllipsis

	return fr
}

// Update shows the file at position index (0-based)
func (fr *FileRow) Update(index int, path string, details FileDetails) {
	// The first row carries its own top line; the list draws the rest.
	if index == 0 {
		fr.separator.Show()
	} else {
		fr.separator.Hide()
	}

	fr.indexLabel.SetText(fmt.Sprintf(IndexLabelFormat, index+1))
	fr.nameLabel.SetText(filepath.Base(path))
	fr.detailLabel.SetText(fr.detailText(path, details))
}

// detailText joins directory, page count and size with middle dots
func (fr *FileRow) detailText(path string, details FileDetails) string {
	parts := []string{platform.DisplayDir(filepath.Dir(path))}

	if details.Pages > 0 {
		parts = append(parts, fmt.Sprintf(fr.localization.GetText(KeyPages), details.Pages))
	} else {
		parts = append(parts, DashPlaceholder)
	}
	if details.Size > 0 {
		parts = append(parts, formatFileSize(details.Size))
	}

	return strings.Join(parts, MiddleDotSeparator)
}

// CreateRenderer lays out the row
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	index := container.NewGridWrap(fyne.NewSize(IndexWidth, fr.indexLabel.MinSize().Height), fr.indexLabel)
	text := container.NewVBox(fr.nameLabel, fr.detailLabel)
	body := container.NewBorder(nil, nil, index, nil, text)

	return widget.NewSimpleRenderer(container.NewBorder(fr.separator, nil, nil, nil, body))
}

// MinSize keeps rows from collapsing below a readable width
func (fr *FileRow) MinSize() fyne.Size {
	size := fr.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	return size
}
