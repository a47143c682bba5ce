package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	kvns "github.com/tarantool/go-kvns"
)

type GetCmd struct {
	app *App

	// flags
	typ          string
	withMetadata bool
}

// NewGetCmd creates a new get command
func NewGetCmd(app *App) *GetCmd {
	return &GetCmd{app: app}
}

// Register adds the get command to the application
func (cmd *GetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "get",
		Usage:     "Print the value of a key",
		UsageText: "kvctl get [--type text|json|arrayBuffer] [--metadata] KEY",
		Description: `Prints the value stored under KEY. Missing and expired keys are an error.

With --metadata the value and its metadata are printed as one JSON object.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "value type (text, json, arrayBuffer)",
				Value:       string(kvns.TypeText),
				Destination: &cmd.typ,
			},
			&cli.BoolFlag{
				Name:        "metadata",
				Aliases:     []string{"m"},
				Usage:       "print value and metadata as JSON",
				Destination: &cmd.withMetadata,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *GetCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one KEY argument")
	}

	key := c.Args().Get(0)

	result, err := cmd.app.Namespace.GetWithMetadata(ctx, key, kvns.Type(cmd.typ))
	if err != nil {
		return fmt.Errorf("get %q: %w", key, err)
	}

	if result.Value == nil {
		found, err := cmd.exists(ctx, key)
		if err != nil {
			return fmt.Errorf("get %q: %w", key, err)
		}

		if !found {
			return fmt.Errorf("key %q not found", key)
		}
	}

	out := c.Root().Writer

	if cmd.withMetadata {
		return writeJSON(out, result)
	}

	switch value := result.Value.(type) {
	case string:
		_, err = fmt.Fprintln(out, value)
	case []byte:
		_, err = out.Write(value)
	default:
		return writeJSON(out, value)
	}

	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// exists tells a stored JSON null apart from a missing key. Raw reads never
// return nil for a present key.
func (cmd *GetCmd) exists(ctx context.Context, key string) (bool, error) {
	if kvns.Type(cmd.typ) != kvns.TypeJSON {
		return false, nil
	}

	raw, err := cmd.app.Namespace.Get(ctx, key, kvns.TypeArrayBuffer)
	if err != nil {
		return false, err
	}

	return raw != nil, nil
}
