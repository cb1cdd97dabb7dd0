package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/efie/internal/efie"
	"github.com/hay-kot/efie/internal/printer"
)

type LsCmd struct {
	flags   *Flags
	pattern string
	dir     string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "ls",
		Usage:       "List saved posts",
		UsageText:   "efie ls [--pattern <glob>] [--dir <dir>]",
		Description: "Lists the files in the save location with their title, word count and modification time.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "pattern",
				Aliases:     []string{"p"},
				Usage:       "only list file names matching this glob",
				Destination: &cmd.pattern,
			},
			&cli.StringFlag{
				Name:        "dir",
				Usage:       "vault directory to list (defaults to the save location)",
				Destination: &cmd.dir,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.pattern != "" && !doublestar.ValidatePattern(cmd.pattern) {
		return fail(ctx, criterio.NewFieldErrors("pattern", fmt.Errorf("invalid glob pattern %q", cmd.pattern)))
	}

	items, err := cmd.flags.Service.ListSaved(ctx, cmd.dir)
	if err != nil {
		return fail(ctx, err)
	}

	if cmd.pattern != "" {
		items = filterItems(items, cmd.pattern)
	}

	if len(items) == 0 {
		p.Infof("No saved posts found")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTITLE\tWORDS\tMODIFIED")

	for _, it := range items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			it.Name,
			truncate(it.Title, 50),
			humanize.Comma(int64(it.Words)),
			humanize.Time(it.ModTime),
		)
	}

	return w.Flush()
}

func filterItems(items []efie.SavedItem, pattern string) []efie.SavedItem {
	out := items[:0]
	for _, it := range items {
		if ok, _ := doublestar.Match(pattern, it.Name); ok {
			out = append(out, it)
		}
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
