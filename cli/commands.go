package cli

import (
	"github.com/postpage/postpage"

	"github.com/urfave/cli/v2"
)

const configFile = "postpage.config.yml"

// indirection for tests
var startServer = postpage.Start

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Serve in dev mode (template reparse, live reload, no cache)",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "port", Usage: "override the configured port"},
	},
	Action: func(c *cli.Context) error {
		cfg := postpage.RuntimeConfig{
			Env:        "dev",
			ConfigPath: configFile,
			Port:       c.Int("port"),
		}
		if err := startServer(cfg); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return nil
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Serve in production mode (eager templates, cache/minify per config)",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "port", Usage: "override the configured port"},
	},
	Action: func(c *cli.Context) error {
		cfg := postpage.RuntimeConfig{
			Env:        "prod",
			ConfigPath: configFile,
			Port:       c.Int("port"),
		}
		if err := startServer(cfg); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return nil
	},
}
