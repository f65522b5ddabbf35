package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	RootFlag     = "root"
	HostFlag     = "host"
	PortFlag     = "port"
	LocaleFlag   = "locale"
	LogLevelFlag = "log-level"
)

func RegisterCatalogFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   RootFlag,
			Usage:  "root directory containing .strm/.nfo hierarchy (required)",
			EnvVar: "ROOT",
		},
		cli.StringFlag{
			Name:   LocaleFlag,
			Usage:  "BCP 47 language tag used to format view counts",
			Value:  "en",
			EnvVar: "LOCALE",
		},
	)
}

func RegisterWebFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   HostFlag,
			Usage:  "host to listen on",
			EnvVar: "HOST",
		},
		cli.IntFlag{
			Name:   PortFlag,
			Usage:  "port to listen on",
			Value:  8080,
			EnvVar: "PORT",
		},
	)
}

func RegisterLogFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   LogLevelFlag,
			Usage:  "log level (debug, info, warn, error)",
			Value:  "info",
			EnvVar: "LOG_LEVEL",
		},
	)
}

func configureLogging(c *cli.Context) error {
	lvl, err := log.ParseLevel(c.String(LogLevelFlag))
	if err != nil {
		return errors.Wrapf(err, "invalid %s", LogLevelFlag)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
