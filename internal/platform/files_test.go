package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if info, err := os.Stat(testDir); err != nil || !info.IsDir() {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_Errors(t *testing.T) {
	if err := CreateDirectoryIfNotExists(""); err == nil {
		t.Error("Expected error for empty path")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	err := CreateDirectoryIfNotExists(file)
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Expected 'not a directory' error, got %v", err)
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

func TestDefaultDownloadDir(t *testing.T) {
	dir, err := DefaultDownloadDir()
	if err != nil {
		t.Fatalf("Failed to get default download directory: %v", err)
	}

	if filepath.Base(dir) != AppDirName {
		t.Errorf("Expected directory to end with %q, got: %s", AppDirName, dir)
	}
	if filepath.Base(filepath.Dir(dir)) != DownloadsDirName {
		t.Errorf("Expected parent to be %q, got: %s", DownloadsDirName, dir)
	}
}

func TestOpenFolder_NonExistent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	err := OpenFolder(missing)
	if err == nil {
		t.Fatal("Expected error for missing folder, got nil")
	}
	if !strings.Contains(err.Error(), "folder does not exist") {
		t.Errorf("Unexpected error: %v", err)
	}
}
