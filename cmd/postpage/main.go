package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	ppcli "github.com/postpage/postpage/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "postpage",
		Usage: "A single-page HTML scaffold powered by Go",
		Commands: []*clilib.Command{
			ppcli.DevCommand,
			ppcli.ProdCommand,
			ppcli.CheckCommand,
			ppcli.CleanCommand,
			ppcli.InfoCommand,
			ppcli.InitCommand,
		},
	}

	return app.Run(args)
}

func main() {
	// Cookie signing keys may live in a .env next to the config.
	_ = godotenv.Load()

	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
