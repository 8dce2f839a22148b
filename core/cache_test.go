package core

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveCachedPageAndGetCachedPage(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Config{OutputDir: tmpDir}
	route := "index"
	html := []byte("<html><body>Hello, ben!</body></html>")

	err := SaveCachedPage(cfg, route, html)
	if err != nil {
		t.Fatalf("SaveCachedPage failed: %v", err)
	}

	htmlPath := filepath.Join(tmpDir, route, "index.html")
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("Failed to read index.html: %v", err)
	}
	if !bytes.Equal(data, html) {
		t.Errorf("Cached HTML does not match original")
	}

	gzFile, err := os.Open(htmlPath + ".gz")
	if err != nil {
		t.Fatalf("Failed to read gzip file: %v", err)
	}
	defer gzFile.Close()

	gzReader, err := gzip.NewReader(gzFile)
	if err != nil {
		t.Fatalf("Failed to create gzip reader: %v", err)
	}
	defer gzReader.Close()

	unzipped, err := io.ReadAll(gzReader)
	if err != nil {
		t.Fatalf("Failed to read from gzip reader: %v", err)
	}

	if !bytes.Equal(unzipped, html) {
		t.Errorf("Gzipped content does not match original HTML")
	}

	cached, ok := GetCachedPage(cfg, route)
	if !ok {
		t.Errorf("Expected to find cached page, got false")
	}
	if !bytes.Equal(cached, html) {
		t.Errorf("GetCachedPage returned incorrect content")
	}
}

func TestGetCachedPage_MissingFile(t *testing.T) {
	cfg := Config{OutputDir: t.TempDir()}

	data, ok := GetCachedPage(cfg, "non-existent")
	if ok {
		t.Errorf("Expected ok=false for missing file")
	}
	if data != nil {
		t.Errorf("Expected nil data for missing file")
	}
}
