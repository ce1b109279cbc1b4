package watcher

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTranscriptFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"data-1.json", true},
		{"DATA.JSON", true},
		{"notes.md", false},
		{"video.mp4", false},
		{"json", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isTranscriptFile(tt.path); got != tt.want {
				t.Errorf("isTranscriptFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestListTranscripts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", ".hidden.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0755); err != nil {
		t.Fatal(err)
	}

	w := &implWatcher{inputDir: dir}
	paths, err := w.listTranscripts()
	if err != nil {
		t.Fatalf("listTranscripts() error = %v", err)
	}

	want := []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}
	if len(paths) != len(want) {
		t.Fatalf("listTranscripts() = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}
