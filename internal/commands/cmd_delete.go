package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type DeleteCmd struct {
	app *App
}

// NewDeleteCmd creates a new delete command
func NewDeleteCmd(app *App) *DeleteCmd {
	return &DeleteCmd{app: app}
}

// Register adds the delete command to the application
func (cmd *DeleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a key",
		UsageText: "kvctl delete KEY...",
		Action:    cmd.run,
	})

	return app
}

func (cmd *DeleteCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected at least one KEY argument")
	}

	for _, key := range c.Args().Slice() {
		if err := cmd.app.Namespace.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %q: %w", key, err)
		}
	}

	return nil
}
