package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	if err != nil {
		t.Fatalf("Failed to get executable directory: %v", err)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Expected %s to be an existing directory", dir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.pdf")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	err := OpenFileWithDefaultApp("")
	if err == nil {
		t.Fatal("Expected error for empty path, got nil")
	}
}

func TestEnsurePDFExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/out/merged", "/out/merged.pdf"},
		{"/out/merged.pdf", "/out/merged.pdf"},
		{"/out/MERGED.PDF", "/out/MERGED.PDF"},
		{"/out/merged.txt", "/out/merged.txt.pdf"},
		{"", ""},
	}

	for _, test := range tests {
		if result := EnsurePDFExtension(test.input); result != test.expected {
			t.Errorf("EnsurePDFExtension(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestDisplayDir(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if result := DisplayDir(homeDir); result != "~" {
		t.Errorf("Expected home to display as ~, got %s", result)
	}

	inside := filepath.Join(homeDir, "Documents", "scans")
	if result := DisplayDir(inside); result != filepath.Join("~", "Documents", "scans") {
		t.Errorf("Expected shortened path, got %s", result)
	}

	outside := filepath.Join(string(filepath.Separator), "definitely-not-home", "x")
	if homeDir != string(filepath.Separator) {
		if result := DisplayDir(outside); result != outside {
			t.Errorf("Expected unchanged path %s, got %s", outside, result)
		}
	}
}

func TestRemoveIfEmpty(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.pdf")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("write empty: %v", err)
	}
	full := filepath.Join(dir, "full.pdf")
	if err := os.WriteFile(full, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("write full: %v", err)
	}

	if err := RemoveIfEmpty(empty); err != nil {
		t.Fatalf("RemoveIfEmpty(empty) error: %v", err)
	}
	if _, err := os.Stat(empty); !os.IsNotExist(err) {
		t.Errorf("empty file should be removed, stat err = %v", err)
	}

	if err := RemoveIfEmpty(full); err != nil {
		t.Fatalf("RemoveIfEmpty(full) error: %v", err)
	}
	if _, err := os.Stat(full); err != nil {
		t.Errorf("non-empty file should stay: %v", err)
	}

	if err := RemoveIfEmpty(filepath.Join(dir, "missing.pdf")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
	if err := RemoveIfEmpty(""); err != nil {
		t.Errorf("empty path should be ignored, got %v", err)
	}
	if err := RemoveIfEmpty(dir); err != nil {
		t.Errorf("directory should be ignored, got %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory should stay: %v", err)
	}
}

func TestListPDFFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "A.PDF", "notes.txt", "c.pdf.bak"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "folder.pdf"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := ListPDFFiles(dir)
	if err != nil {
		t.Fatalf("ListPDFFiles error: %v", err)
	}

	want := []string{filepath.Join(dir, "A.PDF"), filepath.Join(dir, "b.pdf")}
	if len(paths) != len(want) {
		t.Fatalf("ListPDFFiles = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}

	if _, err := ListPDFFiles(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
