package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	kvns "github.com/tarantool/go-kvns"
)

type ListCmd struct {
	app *App

	// flags
	prefix string
	limit  int
	cursor string
}

// NewListCmd creates a new list command
func NewListCmd(app *App) *ListCmd {
	return &ListCmd{app: app}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List keys",
		UsageText: "kvctl list [--prefix P] [--limit L] [--cursor C]",
		Description: `Prints one page of keys as JSON.

Pass the returned cursor to --cursor to fetch the next page.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "prefix",
				Aliases:     []string{"p"},
				Usage:       "only keys starting with the prefix",
				Destination: &cmd.prefix,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"l"},
				Usage:       "maximum number of keys",
				Value:       kvns.DefaultListLimit,
				Destination: &cmd.limit,
			},
			&cli.StringFlag{
				Name:        "cursor",
				Usage:       "cursor returned by a previous list",
				Destination: &cmd.cursor,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	result, err := cmd.app.Namespace.List(ctx,
		kvns.WithPrefix(cmd.prefix),
		kvns.WithLimit(cmd.limit),
		kvns.WithCursor(cmd.cursor),
	)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	return writeJSON(c.Root().Writer, result)
}
