package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := createTestFile(t, dir, "page.png", "data")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing file", path: filepath.Join(dir, "nope.png"), want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if got := (OS{}).FileExists(tt.path); got != tt.want {
				t.Errorf("OS.FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	t.Run("symlink to file", func(t *testing.T) {
		link := filepath.Join(dir, "link.png")
		if err := os.Symlink(file, link); err != nil {
			t.Skipf("symlink creation failed: %v", err)
		}
		if !FileExists(link) {
			t.Error("Expected symlink to regular file to count as existing")
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("home directory unavailable")
	}

	tests := []struct {
		in   string
		want string
	}{
		{in: "~/scans", want: filepath.Join(home, "scans")},
		{in: "/abs/path", want: "/abs/path"},
		{in: "relative/path", want: "relative/path"},
		{in: "~user/path", want: "~user/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateExtension(t *testing.T) {
	tests := map[string]string{
		"png":    ".png",
		".PNG":   ".png",
		" .jpg ": ".jpg",
		"":       "",
		".":      "",
	}

	for in, want := range tests {
		if got := ValidateExtension(in); got != want {
			t.Errorf("ValidateExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateFilenameFragment(t *testing.T) {
	valid := []string{"", "_noisy", "-n1", ".v2"}
	for _, f := range valid {
		if err := ValidateFilenameFragment(f); err != nil {
			t.Errorf("ValidateFilenameFragment(%q) unexpected error: %v", f, err)
		}
	}

	invalid := []string{"a/b", `a\b`, "..", "_x\x00"}
	for _, f := range invalid {
		if err := ValidateFilenameFragment(f); err == nil {
			t.Errorf("ValidateFilenameFragment(%q) expected error", f)
		}
	}
}
