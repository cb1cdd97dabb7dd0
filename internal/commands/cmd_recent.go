package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/efie/internal/printer"
)

type RecentCmd struct {
	flags *Flags

	// Command-specific flags
	prune bool
	clear bool
}

// NewRecentCmd creates a new recent command
func NewRecentCmd(flags *Flags) *RecentCmd {
	return &RecentCmd{flags: flags}
}

// Register adds the recent command to the application
func (cmd *RecentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "recent",
		Usage:     "View or manage recently saved posts",
		UsageText: "efie recent [options]",
		Description: `Lists the files saved by fetch, oldest first.

Entries are kept when the file is deleted or moved; they are marked as
missing. Use --prune to drop missing entries or --clear to empty the list.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "prune",
				Usage:       "remove entries whose file no longer exists",
				Destination: &cmd.prune,
			},
			&cli.BoolFlag{
				Name:        "clear",
				Usage:       "remove all entries",
				Destination: &cmd.clear,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RecentCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	switch {
	case cmd.clear:
		if err := cmd.flags.Service.ClearRecent(ctx); err != nil {
			return fmt.Errorf("clear recent: %w", err)
		}
		p.Successf("Recent list cleared")
		return nil
	case cmd.prune:
		removed, err := cmd.flags.Service.PruneRecent(ctx)
		if err != nil {
			return fmt.Errorf("prune recent: %w", err)
		}
		if removed == 0 {
			p.Infof("No missing entries")
			return nil
		}
		p.Successf("Removed %d missing entr%s", removed, plural(removed, "y", "ies"))
		return nil
	}

	entries, err := cmd.flags.Service.Recent(ctx)
	if err != nil {
		return fmt.Errorf("list recent: %w", err)
	}

	if len(entries) == 0 {
		p.Infof("No recently saved posts")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tPATH\tSTATUS")

	for i, e := range entries {
		status := "ok"
		if !e.Exists {
			status = "missing"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, e.Path, status)
	}

	return w.Flush()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
