package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	kvns "github.com/tarantool/go-kvns"
	"github.com/tarantool/go-kvns/marshaller"
)

type PutCmd struct {
	app *App

	// flags
	file       string
	expiration string
	ttl        string
	metadata   string
}

// NewPutCmd creates a new put command
func NewPutCmd(app *App) *PutCmd {
	return &PutCmd{app: app}
}

// Register adds the put command to the application
func (cmd *PutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "put",
		Usage:     "Store a value under a key",
		UsageText: "kvctl put [--expiration E | --ttl T] [--metadata JSON] KEY [VALUE]",
		Description: `Stores VALUE under KEY, replacing any previous value, expiration and metadata.

The value is taken from the VALUE argument, from --file, or from stdin.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "read the value from a file",
				Destination: &cmd.file,
			},
			&cli.StringFlag{
				Name:        "expiration",
				Usage:       "absolute expiration in unix seconds",
				Destination: &cmd.expiration,
			},
			&cli.StringFlag{
				Name:        "ttl",
				Usage:       "expiration in seconds from now",
				Destination: &cmd.ttl,
			},
			&cli.StringFlag{
				Name:        "metadata",
				Usage:       "metadata as a JSON document",
				Destination: &cmd.metadata,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PutCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 || c.NArg() > 2 {
		return fmt.Errorf("expected KEY and an optional VALUE argument")
	}

	key := c.Args().Get(0)

	value, err := cmd.readValue(c)
	if err != nil {
		return err
	}

	var opts []kvns.PutOption

	if c.IsSet("expiration") {
		opts = append(opts, kvns.WithExpirationString(cmd.expiration))
	}

	if c.IsSet("ttl") {
		opts = append(opts, kvns.WithExpirationTTLString(cmd.ttl))
	}

	if c.IsSet("metadata") {
		metadata, err := marshaller.NewJSONMarshaller().Decode([]byte(cmd.metadata))
		if err != nil {
			return fmt.Errorf("parse metadata: %w", err)
		}

		opts = append(opts, kvns.WithMetadata(metadata))
	}

	if err := cmd.app.Namespace.Put(ctx, key, value, opts...); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}

	cmd.app.Logger.Debug().Str("key", key).Int("size", len(value)).Msg("key stored")

	return nil
}

func (cmd *PutCmd) readValue(c *cli.Command) ([]byte, error) {
	if c.NArg() == 2 {
		if cmd.file != "" {
			return nil, fmt.Errorf("VALUE and --file are mutually exclusive")
		}

		return []byte(c.Args().Get(1)), nil
	}

	if cmd.file != "" {
		data, err := os.ReadFile(cmd.file)
		if err != nil {
			return nil, fmt.Errorf("read value file: %w", err)
		}

		return data, nil
	}

	reader := c.Root().Reader
	if reader == nil {
		reader = os.Stdin
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read value from stdin: %w", err)
	}

	return data, nil
}
