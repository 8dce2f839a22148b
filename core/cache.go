package core

import (
	"compress/gzip"
	"os"
	"path/filepath"
)

func GetCachedPage(config Config, route string) ([]byte, bool) {
	cachePath := filepath.Join(config.OutputDir, route, "index.html")

	content, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}

	return content, true
}

func SaveCachedPage(config Config, route string, html []byte) error {
	outDir := filepath.Join(config.OutputDir, route)
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return err
	}

	htmlPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0644); err != nil {
		return err
	}

	f, err := os.Create(htmlPath + ".gz")
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	_, err = gz.Write(html)
	return err
}
