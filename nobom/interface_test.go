package nobom_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sokinpui/nobom/internal/ui"
	"github.com/sokinpui/nobom/nobom"
)

func TestStrip(t *testing.T) {
	tempDir := t.TempDir()

	bomFile := filepath.Join(tempDir, "vite.config.js")
	if err := os.WriteFile(bomFile, []byte("\xEF\xBB\xBFexport default {}"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	cleanFile := filepath.Join(tempDir, "index.html")
	if err := os.WriteFile(cleanFile, []byte("<!doctype html>"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	missingFile := filepath.Join(tempDir, "package.json")

	result, err := nobom.Strip([]string{bomFile, missingFile, cleanFile}, nobom.Config{})
	if err != nil {
		t.Fatal(err)
	}

	if got := result["Removed"]; len(got) != 1 || got[0] != bomFile {
		t.Errorf("expected %s to be removed, got %v", bomFile, got)
	}
	if got := result["Clean"]; len(got) != 1 || got[0] != cleanFile {
		t.Errorf("expected %s to be clean, got %v", cleanFile, got)
	}
	if got := result["Failed"]; len(got) != 1 || got[0] != missingFile {
		t.Errorf("expected %s to fail, got %v", missingFile, got)
	}

	content, err := os.ReadFile(bomFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "export default {}" {
		t.Errorf("unexpected content after strip: %q", content)
	}
}

func TestTargetsAreFixed(t *testing.T) {
	want := []string{"package.json", "postcss.config.js", "tailwind.config.js", "vite.config.js", "index.html"}
	if len(nobom.Targets) != len(want) {
		t.Fatalf("Targets = %v, want %v", nobom.Targets, want)
	}
	for i := range want {
		if nobom.Targets[i] != want[i] {
			t.Errorf("Targets[%d] = %q, want %q", i, nobom.Targets[i], want[i])
		}
	}
}

func TestStripPrint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postcss.config.js")
	if err := os.WriteFile(path, []byte("module.exports = {}"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	var out bytes.Buffer
	old := ui.Out
	ui.Out = &out
	ui.DisableColor()
	defer func() { ui.Out = old }()

	if _, err := nobom.Strip([]string{path}, nobom.Config{}); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output without Print, got %q", out.String())
	}

	if _, err := nobom.Strip([]string{path}, nobom.Config{Print: true}); err != nil {
		t.Fatal(err)
	}
	if want := "No BOM in " + path + "\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
