package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type ShowCmd struct {
	flags *Flags
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Render a saved post in the terminal",
		UsageText: "efie show <name>",
		Description: `Renders a saved post with the configured glamour style.

<name> is a slug, a file name in the save location or a vault path.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("post name required\n\nUsage: efie show <name>")
	}

	if err := cmd.flags.Service.Show(ctx, c.Args().First()); err != nil {
		return fail(ctx, err)
	}
	return nil
}
