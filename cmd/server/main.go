package main

import (
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("failed to load .env")
	}

	app := cli.NewApp()
	app.Name = "ytcard"
	app.Usage = "Serves video cards for a .strm/.nfo catalog"
	app.Version = "0.0.1"
	app.Commands = []cli.Command{
		makeServeCMD(),
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
