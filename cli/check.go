package cli

import (
	"fmt"

	"github.com/postpage/postpage/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate the template set without serving",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(configFile)

		templates, err := core.LoadTemplateSet(config.TemplatesDir)
		if err != nil {
			return cli.Exit(fmt.Sprintf("❌ %v", err), 1)
		}

		if _, err := templates.Render(core.PageTemplate, map[string]string{"name": core.PageName}); err != nil {
			return cli.Exit(fmt.Sprintf("❌ %s → exec error: %v", core.PageTemplate, err), 1)
		}

		fmt.Printf("✅ %d template(s) validated successfully.\n", templates.Count())
		return nil
	},
}
