package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// seedCache writes fake cache entries shaped like the file cache's
// <dir>/<prefix>/<hash>.json layout.
func seedCache(t *testing.T, dir string, n int) {
	t.Helper()
	sub := filepath.Join(dir, "ab")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		path := filepath.Join(sub, string(rune('a'+i))+".json")
		if err := os.WriteFile(path, []byte(`{"data":"x"}`), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCacheUsage(t *testing.T) {
	dir := t.TempDir()
	seedCache(t, dir, 3)

	entries, size, err := cacheUsage(dir)
	if err != nil {
		t.Fatalf("cacheUsage() error: %v", err)
	}
	if entries != 3 {
		t.Errorf("entries = %d, want 3", entries)
	}
	if size != 3*int64(len(`{"data":"x"}`)) {
		t.Errorf("size = %d, want %d", size, 3*len(`{"data":"x"}`))
	}
}

func TestCacheUsageMissingDir(t *testing.T) {
	entries, size, err := cacheUsage(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("cacheUsage() error: %v", err)
	}
	if entries != 0 || size != 0 {
		t.Errorf("entries = %d, size = %d, want 0, 0", entries, size)
	}
}

func TestClearCache(t *testing.T) {
	dir := t.TempDir()
	seedCache(t, dir, 2)

	count, err := clearCache(dir)
	if err != nil {
		t.Fatalf("clearCache() error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	// Files and the emptied subdirectory are gone; the root stays.
	if _, err := os.Stat(filepath.Join(dir, "ab")); !os.IsNotExist(err) {
		t.Error("subdirectory should have been removed")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache root should remain: %v", err)
	}
}

func TestClearCacheEmptyDir(t *testing.T) {
	count, err := clearCache(t.TempDir())
	if err != nil {
		t.Fatalf("clearCache() error: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{5 << 20, "5.0 MiB"},
		{1 << 30, "1.0 GiB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
