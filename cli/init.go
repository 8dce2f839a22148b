package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

//go:embed all:_starter
var starterFS embed.FS

var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Create a new postpage site from the default starter",
	Action: func(c *cli.Context) error {
		targetDir, _ := os.Getwd()
		fmt.Println("🚀 Creating postpage site in:", targetDir)

		if err := copyEmbeddedDir(starterFS, "_starter", targetDir); err != nil {
			return fmt.Errorf("failed to create site: %w", err)
		}

		fmt.Println("✅ Site created successfully.")
		fmt.Println("▶  Run: postpage dev")
		return nil
	},
}

func copyEmbeddedDir(fsys embed.FS, root, target string) error {
	return fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return err
		}

		dest := filepath.Join(target, rel)

		if d.IsDir() {
			return os.MkdirAll(dest, os.ModePerm)
		}

		if _, err := os.Stat(dest); err == nil {
			fmt.Println("⏭  Skipping existing file:", rel)
			return nil
		}

		data, err := fsys.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(dest, data, 0644)
	})
}
