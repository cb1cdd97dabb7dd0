package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type OpenCmd struct {
	flags *Flags
}

// NewOpenCmd creates a new open command
func NewOpenCmd(flags *Flags) *OpenCmd {
	return &OpenCmd{flags: flags}
}

// Register adds the open command to the application
func (cmd *OpenCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "open",
		Usage:     "Open a saved post in your editor",
		UsageText: "efie open <name>",
		Description: `Runs the configured open_command for a saved post.

<name> is a slug, a file name in the save location or a vault path.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *OpenCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("post name required\n\nUsage: efie open <name>")
	}

	if err := cmd.flags.Service.Open(ctx, c.Args().First()); err != nil {
		return fail(ctx, err)
	}
	return nil
}
