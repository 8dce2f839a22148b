package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/postpage/postpage/core"
	"github.com/urfave/cli/v2"
)

var CleanCommand = &cli.Command{
	Name:      "clean",
	Usage:     "Delete cached rendered pages (default: outputDir in postpage.config.yml)",
	ArgsUsage: "[route (optional)]",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(configFile)
		target := config.OutputDir

		if c.Args().Len() > 0 {
			route := strings.TrimPrefix(c.Args().Get(0), "/")
			target = filepath.Join(config.OutputDir, route)
		}

		info, err := os.Stat(target)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("🧼 Nothing to clean:", target)
				return nil
			}
			return fmt.Errorf("failed to access path: %w", err)
		}

		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", target)
		}

		fmt.Println("🧹 Cleaning:", target)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to clean cache: %w", err)
		}

		fmt.Println("✅ Done.")
		return nil
	},
}
