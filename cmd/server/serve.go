package main

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/claes/ytcard/internal/browse"
	"github.com/claes/ytcard/internal/format"
	apphttp "github.com/claes/ytcard/internal/http"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = RegisterCatalogFlags(c.Flags)
	c.Flags = RegisterWebFlags(c.Flags)
	c.Flags = RegisterLogFlags(c.Flags)
}

func serve(c *cli.Context) error {
	if err := configureLogging(c); err != nil {
		return err
	}

	root := c.String(RootFlag)
	if root == "" && c.NArg() > 0 {
		// accept positional arg if provided
		root = c.Args().First()
	}
	if root == "" {
		return errors.New("missing root directory: pass --root PATH or positional PATH")
	}
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return errors.Errorf("invalid root directory: %s", root)
	}

	// Setting Catalog
	entries, err := browse.Catalog(root)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"root": root, "videos": len(entries)}).Info("catalog loaded")

	// Setting Formatter
	f := format.NewLocale(c.String(LocaleFlag))

	addr := fmt.Sprintf("%s:%d", c.String(HostFlag), c.Int(PortFlag))
	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           apphttp.NewServer(root, browse.NewIndex(entries), f),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-done:
		log.Info("shutdown signal received")
	case err := <-errCh:
		return errors.Wrap(err, "listen failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("graceful shutdown failed")
		_ = srv.Close()
	}
	log.Info("server stopped")
	return nil
}
