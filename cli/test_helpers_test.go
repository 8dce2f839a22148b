package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// withSite chdirs into a fresh directory holding a postpage.config.yml
// that points templatesDir/outputDir at the given paths.
func withSite(t *testing.T, templatesDir, outputDir string) {
	t.Helper()

	dir := t.TempDir()
	configYAML := "templatesDir: " + templatesDir + "\noutputDir: " + outputDir + "\n"
	if err := os.WriteFile(filepath.Join(dir, "postpage.config.yml"), []byte(configYAML), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Chdir(dir)
}
