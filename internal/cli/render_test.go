package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"empty output strips input extension", "", "team.json", "team"},
		{"empty output nested input", "", "charts/team.json", "charts/team"},
		{"output with format extension stripped", "out.svg", "team.json", "out"},
		{"output with png extension stripped", "pics/out.png", "team.json", "pics/out"},
		{"output with unknown extension kept", "out.bak", "team.json", "out.bak"},
		{"output without extension kept", "out", "team.json", "out"},
		{"empty output url input", "", "https://example.com/org/team.json", "team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifactsSingleFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "team.json")
	artifacts := map[string][]byte{"svg": []byte("<svg/>")}

	paths, err := writeArtifacts(artifacts, []string{"svg"}, input, "")
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}

	want := filepath.Join(dir, "team.svg")
	if paths[0] != want {
		t.Errorf("path = %q, want %q", paths[0], want)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("artifact content = %q, want %q", data, "<svg/>")
	}
}

func TestWriteArtifactsExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "team.json")
	out := filepath.Join(dir, "picture.svg")
	artifacts := map[string][]byte{"svg": []byte("<svg/>")}

	paths, err := writeArtifacts(artifacts, []string{"svg"}, input, out)
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if len(paths) != 1 || paths[0] != out {
		t.Fatalf("paths = %v, want [%s]", paths, out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected artifact at %s: %v", out, err)
	}
}

func TestWriteArtifactsMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "team.json")
	artifacts := map[string][]byte{
		"svg": []byte("<svg/>"),
		"txt": []byte("┌─┐"),
		"dot": []byte("digraph org {}"),
	}

	paths, err := writeArtifacts(artifacts, []string{"svg", "txt", "dot"}, input, "")
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths, want 3", len(paths))
	}

	// Paths come back in format order, not map order.
	wantOrder := []string{
		filepath.Join(dir, "team.svg"),
		filepath.Join(dir, "team.txt"),
		filepath.Join(dir, "team.dot"),
	}
	for i, want := range wantOrder {
		if paths[i] != want {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want)
		}
		if _, err := os.Stat(want); err != nil {
			t.Errorf("expected artifact at %s: %v", want, err)
		}
	}
}

func TestWriteArtifactsSkipsMissingFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "team.json")
	artifacts := map[string][]byte{"svg": []byte("<svg/>")}

	paths, err := writeArtifacts(artifacts, []string{"svg", "png"}, input, "")
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if len(paths) != 1 {
		t.Errorf("got %d paths, want 1 (png artifact absent)", len(paths))
	}
}
