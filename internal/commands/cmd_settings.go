package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/efie/internal/core/settings"
	"github.com/hay-kot/efie/internal/forms"
	"github.com/hay-kot/efie/internal/printer"
)

type SettingsCmd struct {
	flags *Flags

	host         string
	slug         string
	saveLocation string
}

// NewSettingsCmd creates a new settings command
func NewSettingsCmd(flags *Flags) *SettingsCmd {
	return &SettingsCmd{flags: flags}
}

// Register adds the settings command and its subcommands to the application
func (cmd *SettingsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "settings",
		Usage:     "Show or change the saved settings",
		UsageText: "efie settings [command]",
		Description: `Shows the stored host, slug and save location.

These values prefill the fetch dialog. The save location is the vault
directory new posts are written to.`,
		Action: cmd.runShow,
		Commands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "Change individual settings",
				UsageText: "efie settings set [--host <host>] [--slug <slug>] [--save-location <dir>]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "host",
						Usage:       "publication host",
						Destination: &cmd.host,
					},
					&cli.StringFlag{
						Name:        "slug",
						Usage:       "post slug",
						Destination: &cmd.slug,
					},
					&cli.StringFlag{
						Name:        "save-location",
						Usage:       "vault directory posts are saved to",
						Destination: &cmd.saveLocation,
					},
				},
				Action: cmd.runSet,
			},
			{
				Name:      "edit",
				Usage:     "Edit settings in a form",
				UsageText: "efie settings edit",
				Action:    cmd.runEdit,
			},
		},
	})

	return app
}

func (cmd *SettingsCmd) runShow(ctx context.Context, c *cli.Command) error {
	st, err := cmd.flags.Service.Settings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	cmd.print(c, st)
	return nil
}

func (cmd *SettingsCmd) runSet(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if !c.IsSet("host") && !c.IsSet("slug") && !c.IsSet("save-location") {
		return fmt.Errorf("nothing to set\n\nUsage: efie settings set [--host <host>] [--slug <slug>] [--save-location <dir>]")
	}

	// Validate the merged settings before saving.
	current, err := cmd.flags.Service.Settings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	cmd.apply(c, &current)
	if err := current.Validate(); err != nil {
		return fail(ctx, err)
	}

	st, err := cmd.flags.Service.UpdateSettings(ctx, func(st *settings.Settings) {
		cmd.apply(c, st)
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	p.Successf("Settings saved")
	cmd.print(c, st)
	return nil
}

func (cmd *SettingsCmd) apply(c *cli.Command, st *settings.Settings) {
	if c.IsSet("host") {
		st.Host = strings.TrimSpace(cmd.host)
	}
	if c.IsSet("slug") {
		st.Slug = strings.TrimSpace(cmd.slug)
	}
	if c.IsSet("save-location") {
		st.SaveLocation = strings.TrimSpace(cmd.saveLocation)
	}
}

func (cmd *SettingsCmd) runEdit(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	current, err := cmd.flags.Service.Settings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	edited, err := forms.RunSettings(current)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			p.Infof("Cancelled")
			return nil
		}
		return fmt.Errorf("settings form: %w", err)
	}

	st, err := cmd.flags.Service.UpdateSettings(ctx, func(st *settings.Settings) {
		st.Host = edited.Host
		st.Slug = edited.Slug
		st.SaveLocation = edited.SaveLocation
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	p.Successf("Settings saved")
	cmd.print(c, st)
	return nil
}

func (cmd *SettingsCmd) print(c *cli.Command, st settings.Settings) {
	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "host\t%s\n", orNone(st.Host))
	_, _ = fmt.Fprintf(w, "slug\t%s\n", orNone(st.Slug))
	_, _ = fmt.Fprintf(w, "saveLocation\t%s\n", orNone(st.SaveLocation))
	_, _ = fmt.Fprintf(w, "recent\t%d\n", len(st.RecentBlogs))
	_ = w.Flush()
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
