package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-env-overlay/conf"
	"github.com/MKhiriev/go-env-overlay/envsource"
	"github.com/MKhiriev/go-env-overlay/internal/config"
	"github.com/MKhiriev/go-env-overlay/internal/handler"
	"github.com/MKhiriev/go-env-overlay/internal/loader"
	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/internal/server"
	"github.com/MKhiriev/go-env-overlay/models"
)

var _ Runner = (*App)(nil)

type App struct {
	cfg       *config.StructuredConfig
	conf      *conf.Conf
	buildInfo models.AppBuildInfo

	stdout io.Writer
	logger *logger.Logger
}

// NewApp loads the base document named by cfg and overlays the environment.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, stdout io.Writer, logger *logger.Logger) (*App, error) {
	c, err := loadConf(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:       cfg,
		conf:      c,
		buildInfo: buildInfo,
		stdout:    stdout,
		logger:    logger,
	}, nil
}

func loadConf(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (*conf.Conf, error) {
	format, err := loader.ParseFormat(cfg.Source.Format)
	if err != nil {
		return nil, err
	}

	l := loader.NewLoader(loader.NewHTTPClient(cfg.Source.Timeout), format, logger)
	base, err := l.Load(ctx, cfg.Source.Path)
	if err != nil {
		return nil, fmt.Errorf("error loading base configuration: %w", err)
	}

	opts := conf.Options{
		Config: base,
		Logger: &logger.Logger,
	}

	if !cfg.Overlay.Disabled {
		env, err := environment(cfg.Source.EnvFiles)
		if err != nil {
			return nil, err
		}
		opts.MergeEnv = &models.OverlaySpec{
			Prefix:    cfg.Overlay.Prefix,
			Separator: cfg.Overlay.Separator,
		}
		opts.Env = env
	}

	return conf.New(opts)
}

// environment layers the .env files behind the process environment.
func environment(envFiles []string) (envsource.Environment, error) {
	if len(envFiles) == 0 {
		return envsource.OS(), nil
	}

	dotenv, err := envsource.FromDotEnv(envFiles...)
	if err != nil {
		return nil, err
	}

	return envsource.Layered(envsource.OS(), dotenv), nil
}

// Run dispatches the command held in the positional arguments. With no
// command the merged configuration is displayed.
func (a *App) Run(ctx context.Context) error {
	command, operands := "display", []string(nil)
	if len(a.cfg.Args) > 0 {
		command, operands = a.cfg.Args[0], a.cfg.Args[1:]
	}

	a.logger.Debug().Str("command", command).Int("overrides", len(a.conf.Overrides())).Msg("running command")

	switch command {
	case "display":
		return a.display(operands)
	case "get":
		return a.get(operands)
	case "overrides":
		return a.overrides(operands)
	case "serve":
		return a.serve(ctx, operands)
	case "version":
		return a.version(operands)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) display(operands []string) error {
	if len(operands) != 0 {
		return fmt.Errorf("%w: display takes no arguments", ErrUsage)
	}
	return a.conf.Display(a.stdout)
}

func (a *App) get(operands []string) error {
	if len(operands) != 1 {
		return fmt.Errorf("%w: get takes exactly one path", ErrUsage)
	}

	value, ok := a.conf.Get(operands[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrPathNotFound, operands[0])
	}

	_, err := fmt.Fprintln(a.stdout, value.String())
	return err
}

func (a *App) overrides(operands []string) error {
	if len(operands) != 0 {
		return fmt.Errorf("%w: overrides takes no arguments", ErrUsage)
	}

	for _, o := range a.conf.Overrides() {
		if _, err := fmt.Fprintf(a.stdout, "%s\t%s\n", o.Path, o.VarName); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) serve(ctx context.Context, operands []string) error {
	if len(operands) != 0 {
		return fmt.Errorf("%w: serve takes no arguments", ErrUsage)
	}

	handlers, err := handler.NewHandlers(a.conf, a.buildInfo, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func (a *App) version(operands []string) error {
	if len(operands) != 0 {
		return fmt.Errorf("%w: version takes no arguments", ErrUsage)
	}
	return PrintBuildInfo(a.stdout, a.buildInfo)
}

// PrintBuildInfo writes the build metadata in the form shown by the version
// command.
func PrintBuildInfo(w io.Writer, info models.AppBuildInfo) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())
	return err
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, usage)
}
