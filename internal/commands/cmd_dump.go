package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tarantool/go-kvns/internal/dump"
)

type DumpCmd struct {
	app *App

	// flags
	out string
}

// NewDumpCmd creates a new dump command
func NewDumpCmd(app *App) *DumpCmd {
	return &DumpCmd{app: app}
}

// Register adds the dump command to the application
func (cmd *DumpCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "dump",
		Usage:     "Write every live key of the namespace as msgpack",
		UsageText: "kvctl dump [--out FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output file (defaults to stdout)",
				Destination: &cmd.out,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *DumpCmd) run(ctx context.Context, c *cli.Command) error {
	d, err := dump.Collect(ctx, cmd.app.Namespace, cmd.app.Config.Namespace)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	var w io.Writer = c.Root().Writer

	if cmd.out != "" {
		f, err := os.Create(cmd.out)
		if err != nil {
			return fmt.Errorf("create dump file: %w", err)
		}
		defer func() { _ = f.Close() }()

		w = f
	}

	if err := dump.Write(w, d); err != nil {
		return err
	}

	cmd.app.Logger.Info().Int("records", len(d.Records)).Msg("namespace dumped")

	return nil
}

type RestoreCmd struct {
	app *App

	// flags
	in string
}

// NewRestoreCmd creates a new restore command
func NewRestoreCmd(app *App) *RestoreCmd {
	return &RestoreCmd{app: app}
}

// Register adds the restore command to the application
func (cmd *RestoreCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "restore",
		Usage:     "Load a msgpack dump into the namespace",
		UsageText: "kvctl restore [--in FILE]",
		Description: `Puts every record of a dump, replacing existing keys.

The dump may come from another namespace or backend.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "input file (defaults to stdin)",
				Destination: &cmd.in,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RestoreCmd) run(ctx context.Context, c *cli.Command) error {
	reader := c.Root().Reader
	if reader == nil {
		reader = os.Stdin
	}

	if cmd.in != "" {
		f, err := os.Open(cmd.in)
		if err != nil {
			return fmt.Errorf("open dump file: %w", err)
		}
		defer func() { _ = f.Close() }()

		reader = f
	}

	d, err := dump.Read(reader)
	if err != nil {
		return err
	}

	n, err := dump.Restore(ctx, cmd.app.Namespace, d)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	cmd.app.Logger.Info().
		Str("source", d.Namespace).
		Int("records", n).
		Msg("namespace restored")

	return nil
}
