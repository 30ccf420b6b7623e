// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command wprestd serves a WordPress blog, reached over XML-RPC, as a
// hypermedia REST API.
//
//     wprestd --backend xmlrpc:https://blog.example.com/xmlrpc.php \
//         --username admin --password secret
//
// Settings may also come from a YAML file named with --config; flags
// given on the command line win.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diffeo/go-wprest/backend"
	"github.com/diffeo/go-wprest/wprpc"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	newApp(serve).RunAndExitOnError()
}

// newApp builds the command line.  run is called with the final
// validated configuration.
func newApp(run func(Config) error) *cli.App {
	defaults := defaultConfig()
	be := backend.Backend{Implementation: defaults.Backend}

	app := cli.NewApp()
	app.Name = "wprestd"
	app.Usage = "serve a WordPress blog as a REST API"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML configuration file",
		},
		cli.StringFlag{
			Name:  "http",
			Value: defaults.HTTP,
			Usage: "[ip]:port for HTTP REST interface",
		},
		cli.GenericFlag{
			Name:  "backend",
			Value: &be,
			Usage: "impl[:address] of the blog, memory or xmlrpc:URL",
		},
		cli.IntFlag{
			Name:  "blog-id",
			Usage: "XML-RPC blog id",
		},
		cli.StringFlag{
			Name:   "username",
			Usage:  "XML-RPC user name",
			EnvVar: "WPREST_USERNAME",
		},
		cli.StringFlag{
			Name:   "password",
			Usage:  "XML-RPC password",
			EnvVar: "WPREST_PASSWORD",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Value: defaults.Timeout,
			Usage: "time limit for one XML-RPC call",
		},
		cli.IntFlag{
			Name:  "utc-offset",
			Usage: "seconds east of UTC for local timestamps (default: the blog's time_zone)",
		},
		cli.IntFlag{
			Name:  "page-size",
			Value: defaults.PageSize,
			Usage: "records per collection page",
		},
		cli.StringFlag{
			Name:  "api-root",
			Value: defaults.APIRoot,
			Usage: "first path segment of resource URLs",
		},
		cli.StringFlag{
			Name:  "api-version",
			Value: defaults.APIVersion,
			Usage: "API version path segment",
		},
		cli.BoolFlag{
			Name:  "log-requests",
			Usage: "log all requests",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: defaults.LogLevel,
			Usage: "minimum level of log messages",
		},
		cli.BoolFlag{
			Name:  "gzip",
			Usage: "compress responses",
		},
	}
	app.Action = func(c *cli.Context) error {
		cfg := defaults
		if file := c.String("config"); file != "" {
			if err := loadConfigFile(file, &cfg); err != nil {
				return err
			}
		}
		applyFlags(c, &cfg, &be)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cfg)
	}
	return app
}

// applyFlags copies every flag given on the command line into cfg.
func applyFlags(c *cli.Context, cfg *Config, be *backend.Backend) {
	if c.IsSet("http") {
		cfg.HTTP = c.String("http")
	}
	if c.IsSet("backend") {
		cfg.Backend = be.String()
	}
	if c.IsSet("blog-id") {
		cfg.BlogID = c.Int("blog-id")
	}
	if c.IsSet("username") {
		cfg.Username = c.String("username")
	}
	if c.IsSet("password") {
		cfg.Password = c.String("password")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("utc-offset") {
		offset := c.Int("utc-offset")
		cfg.UTCOffset = &offset
	}
	if c.IsSet("page-size") {
		cfg.PageSize = c.Int("page-size")
	}
	if c.IsSet("api-root") {
		cfg.APIRoot = c.String("api-root")
	}
	if c.IsSet("api-version") {
		cfg.APIVersion = c.String("api-version")
	}
	if c.IsSet("log-requests") {
		cfg.LogRequests = c.Bool("log-requests")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("gzip") {
		cfg.Gzip = c.Bool("gzip")
	}
}

// serve runs the daemon until it is interrupted.
func serve(cfg Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	rpcMetrics := wprpc.NewMetrics()
	be, creds, err := cfg.BlogBackend()
	if err != nil {
		return err
	}
	blog, err := be.Blog(creds, rpcMetrics)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": be.String(),
		}).Error("Could not create blog backend")
		return err
	}

	offset, err := utcOffset(cfg, blog)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Error("Could not determine the blog's time zone")
		return err
	}

	var reqLogger *logrus.Logger
	if cfg.LogRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.InfoLevel,
		}
	}

	server := &http.Server{
		Addr:    cfg.HTTP,
		Handler: newHandler(blog, cfg.RESTConfig(offset), newRegistry(rpcMetrics), reqLogger, cfg.Gzip),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithFields(logrus.Fields{
			"addr":       cfg.HTTP,
			"backend":    be.String(),
			"utc_offset": offset,
		}).Info("Serving HTTP")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
