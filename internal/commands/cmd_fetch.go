package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/efie/internal/core/post"
	"github.com/hay-kot/efie/internal/efie"
	"github.com/hay-kot/efie/internal/forms"
	"github.com/hay-kot/efie/internal/printer"
)

type FetchCmd struct {
	flags *Flags

	host string
	slug string
	sink string
	into string
	open bool
	form bool
}

// NewFetchCmd creates a new fetch command
func NewFetchCmd(flags *Flags) *FetchCmd {
	return &FetchCmd{flags: flags}
}

// Register adds the fetch command to the application
func (cmd *FetchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch a Hashnode post as markdown",
		UsageText: "efie fetch [--host <host>] [--slug <slug>] [options]",
		Description: `Fetches a post from a Hashnode publication and hands the markdown to a sink.

The file sink saves it as {saveLocation}/{slug}.md in the vault and never
overwrites an existing file. The document sink replaces the content of the
active document. The terminal sink prints it.

When host or slug are missing and efie runs in a terminal, a dialog prefilled
with the last values is shown. Host and slug are remembered for next time.

Example:
  efie fetch --host alice.hashnode.dev --slug hello-world
  efie fetch --sink terminal
  efie fetch --sink document --into notes/draft.md`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "host",
				Usage:       "publication host, e.g. yourblog.hashnode.dev",
				Destination: &cmd.host,
			},
			&cli.StringFlag{
				Name:        "slug",
				Aliases:     []string{"s"},
				Usage:       "post slug",
				Destination: &cmd.slug,
			},
			&cli.StringFlag{
				Name:        "sink",
				Usage:       "where to deliver the post (file, document, terminal); defaults to config",
				Destination: &cmd.sink,
			},
			&cli.StringFlag{
				Name:        "into",
				Usage:       "vault document replaced by the document sink",
				Destination: &cmd.into,
			},
			&cli.BoolFlag{
				Name:        "open",
				Aliases:     []string{"o"},
				Usage:       "open the saved file afterwards",
				Destination: &cmd.open,
			},
			&cli.BoolFlag{
				Name:        "form",
				Aliases:     []string{"f"},
				Usage:       "always show the fetch dialog",
				Destination: &cmd.form,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FetchCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	svc := cmd.flags.Service

	if cmd.sink != "" && !post.SinkKind(cmd.sink).Valid() {
		return fail(ctx, criterio.NewFieldErrors("sink", fmt.Errorf("invalid sink %q (use file, document or terminal)", cmd.sink)))
	}
	if cmd.into != "" && cmd.sink == "" {
		cmd.sink = string(post.SinkDocument)
	}

	st, err := svc.Settings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	values := forms.FetchValues{Host: cmd.host, Slug: cmd.slug}
	if values.Host == "" {
		values.Host = st.Host
	}
	if values.Slug == "" {
		values.Slug = st.Slug
	}

	askForValues := cmd.form || ((cmd.host == "" || cmd.slug == "") && interactive())
	if askForValues {
		values, err = forms.RunFetch(values)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				p.Infof("Cancelled")
				return nil
			}
			return fmt.Errorf("fetch dialog: %w", err)
		}
	}

	loc, err := svc.Deliver(ctx, efie.DeliverOptions{
		Host: values.Host,
		Slug: values.Slug,
		Sink: post.SinkKind(cmd.sink),
		Into: cmd.into,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if msg := efie.SavedNotice(loc); msg != "" {
		p.Successf("%s", msg)
	}

	if cmd.open && loc.Kind != post.SinkTerminal {
		if err := svc.Open(ctx, loc.Path); err != nil {
			return fail(ctx, err)
		}
	}

	return nil
}
