package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/postpage/postpage/core"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print project configuration and cache summary",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(configFile)

		fmt.Println("📁 Templates Directory:", config.TemplatesDir)
		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("🔁 Cache Enabled:", config.CacheEnabled)
		fmt.Println("🔁 Minify Enabled:", config.MinifyHTML)
		fmt.Printf("🌐 Address: %s:%d\n", config.Host, config.Port)
		fmt.Println()

		templateCount := 0
		filepath.Walk(config.TemplatesDir, func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() && strings.HasSuffix(path, ".html") {
				templateCount++
			}
			return nil
		})

		cacheCount := 0
		filepath.Walk(config.OutputDir, func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() && strings.HasSuffix(path, ".html") {
				cacheCount++
			}
			return nil
		})

		fmt.Println("🗂️  Templates Found:", templateCount)
		fmt.Println("💾 Cached Pages:", cacheCount)

		return nil
	},
}
