package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/MKhiriev/go-env-overlay/internal/app"
	"github.com/MKhiriev/go-env-overlay/internal/config"
	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Exit codes.
const (
	exitOK       = 0
	exitNotFound = 1
	exitError    = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes confctl and returns its exit code. stdout carries only
// configuration output; logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if len(args) == 1 && (args[0] == "version" || args[0] == "-version") {
		if err := app.PrintBuildInfo(stdout, buildInfo); err != nil {
			return exitError
		}
		return exitOK
	}

	log := logger.NewLoggerTo(stderr, "confctl")
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		app.Usage(stderr)
		return exitError
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Error().Err(err).Msg("error setting log level")
		return exitError
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	a, err := app.NewApp(ctx, cfg, buildInfo, stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating app")
		return exitError
	}

	if err = a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("confctl run error")
		switch {
		case errors.Is(err, app.ErrPathNotFound):
			return exitNotFound
		case errors.Is(err, app.ErrUsage), errors.Is(err, app.ErrUnknownCommand):
			app.Usage(stderr)
		}
		return exitError
	}

	return exitOK
}
