package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, formatFileSize(tc.bytes), "formatFileSize(%d)", tc.bytes)
	}
}

func TestFileRow_Update(t *testing.T) {
	test.NewApp()
	row := NewFileRow(NewLocalization())

	path := filepath.Join("/srv", "scans", "invoice.pdf")
	row.Update(0, path, FileDetails{Pages: 3, Size: 2048})

	assert.Equal(t, "1.", row.indexLabel.Text)
	assert.Equal(t, "invoice.pdf", row.nameLabel.Text)
	assert.Contains(t, row.detailLabel.Text, "3 pages")
	assert.Contains(t, row.detailLabel.Text, "2.0 KB")
	assert.True(t, row.separator.Visible())

	row.Update(4, path, FileDetails{})

	assert.Equal(t, "5.", row.indexLabel.Text)
	assert.Contains(t, row.detailLabel.Text, DashPlaceholder)
	assert.False(t, row.separator.Visible())
}

func TestFileRow_MinWidth(t *testing.T) {
	test.NewApp()
	row := NewFileRow(NewLocalization())

	assert.GreaterOrEqual(t, row.MinSize().Width, RowMinWidth)
}
