package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	kvns "github.com/tarantool/go-kvns"
	"github.com/tarantool/go-kvns/internal/config"
	"github.com/tarantool/go-kvns/internal/logutils"
)

// NewApp assembles the kvctl root command with all subcommands registered.
func NewApp(flags *Flags, version string) *cli.Command {
	var (
		app       = &App{}
		logCloser func()
	)

	root := &cli.Command{
		Name:      "kvctl",
		Usage:     "Inspect and edit key-value namespaces",
		UsageText: "kvctl [global options] command [command options]",
		Description: `kvctl reads and writes a single namespace of a memory, file or S3 backend.

The backend is selected by the config file and can be overridden by flags.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("KVCTL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("KVCTL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("KVCTL_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "backend",
				Usage:       "storage backend (memory, file, s3)",
				Sources:     cli.EnvVars("KVCTL_BACKEND"),
				Destination: &flags.Backend,
			},
			&cli.StringFlag{
				Name:        "namespace",
				Aliases:     []string{"n"},
				Usage:       "namespace to operate on",
				Sources:     cli.EnvVars("KVCTL_NAMESPACE"),
				Destination: &flags.Namespace,
			},
			&cli.StringFlag{
				Name:        "file-root",
				Usage:       "root directory of the file backend",
				Sources:     cli.EnvVars("KVCTL_FILE_ROOT"),
				Destination: &flags.FileRoot,
			},
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}

			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			flags.apply(cfg)

			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("invalid config: %w", err)
			}

			provider, err := OpenProvider(ctx, cfg)
			if err != nil {
				return ctx, fmt.Errorf("open backend: %w", err)
			}

			nsLogger := logger.With().
				Str("backend", string(cfg.Backend)).
				Str("namespace", cfg.Namespace).
				Logger()

			app.Config = cfg
			app.Logger = nsLogger
			app.Namespace = kvns.New(provider.Namespace(cfg.Namespace), kvns.WithLogger(nsLogger))

			return ctx, nil
		},
		After: func(_ context.Context, _ *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}

			return nil
		},
	}

	root = NewGetCmd(app).Register(root)
	root = NewPutCmd(app).Register(root)
	root = NewDeleteCmd(app).Register(root)
	root = NewListCmd(app).Register(root)
	root = NewDumpCmd(app).Register(root)
	root = NewRestoreCmd(app).Register(root)

	return root
}
